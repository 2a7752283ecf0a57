package models

import (
	"regexp"
	"strconv"
	"time"
)

// AcademicYear represents one labeled school session. At most one year is
// active system-wide at any time; the label (e.g. "2024-2025") is what
// students, fee structures and payments carry as their scope.
type AcademicYear struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Label     string    `json:"label" gorm:"uniqueIndex;not null" validate:"required"`
	StartDate DateOnly  `json:"start_date" gorm:"not null;index" validate:"required"`
	EndDate   DateOnly  `json:"end_date" gorm:"not null;index" validate:"required"`
	IsActive  bool      `json:"is_active" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

var yearLabelPattern = regexp.MustCompile(`^(\d{4})-(\d{4})$`)

// ValidateYearLabel checks the YYYY-YYYY label format and that the two years
// are consecutive.
func ValidateYearLabel(label string) error {
	m := yearLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return &ValidationError{Field: "label", Reason: "must match YYYY-YYYY"}
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if end != start+1 {
		return &ValidationError{Field: "label", Reason: "years must be consecutive"}
	}
	return nil
}

// ValidateYearDates checks that the session start precedes its end.
func ValidateYearDates(start, end DateOnly) error {
	if !start.Time.Before(end.Time) {
		return &ValidationError{Field: "start_date", Reason: "start date must be before end date"}
	}
	return nil
}
