package models

import "time"

// Student carries the slice of the student directory this core depends on.
// The denormalized academic-year label records which session the student was
// admitted under; the year registry refuses to delete a referenced label.
type Student struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentCode  string    `json:"student_code" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName    string    `json:"first_name" gorm:"not null" validate:"required"`
	LastName     string    `json:"last_name" gorm:"not null" validate:"required"`
	ClassID      string    `json:"class_id" gorm:"index;type:uuid"`
	AcademicYear string    `json:"academic_year" gorm:"index"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// FullName returns the display name used on receipts and registers.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Class is a minimal class reference used for scoping fee structures and
// attendance registers.
type Class struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string    `json:"name" gorm:"not null" validate:"required"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
