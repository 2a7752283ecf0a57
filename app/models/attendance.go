package models

import (
	"math"
	"time"
)

// AttendanceRecord is one day's attendance entry for a student in a class.
// The (student, class, date) triple is unique; a re-mark for the same key
// updates the row in place.
type AttendanceRecord struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID string           `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID   string           `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date      DateOnly         `json:"attendance_date" gorm:"not null;index;type:date" validate:"required"`
	Status    AttendanceStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=present absent late"`
	Remarks   string           `json:"remarks,omitempty" gorm:"type:text"`
	MarkedBy  *string          `json:"marked_by,omitempty" gorm:"type:uuid"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time        `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// AttendanceEntry is one student's line in a batch submission for a class and
// date. Students absent from the payload are left untouched.
type AttendanceEntry struct {
	StudentID string           `json:"student_id" validate:"required,uuid"`
	Status    AttendanceStatus `json:"status" validate:"required,oneof=present absent late"`
	Remarks   string           `json:"remarks,omitempty"`
}

// AttendanceSummary aggregates a student's marked days over a date range.
// HasData distinguishes "no records" from a genuine zero percentage.
type AttendanceSummary struct {
	StudentID   string  `json:"student_id"`
	Present     int     `json:"present"`
	Absent      int     `json:"absent"`
	Late        int     `json:"late"`
	TotalMarked int     `json:"total_marked"`
	Percentage  float64 `json:"percentage"`
	HasData     bool    `json:"has_data"`
}

// AttendancePercentage computes present/total as a percentage rounded to two
// decimal places. Zero marked days yields 0 with ok = false.
func AttendancePercentage(present, total int) (float64, bool) {
	if total == 0 {
		return 0, false
	}
	pct := float64(present) / float64(total) * 100
	return math.Round(pct*100) / 100, true
}
