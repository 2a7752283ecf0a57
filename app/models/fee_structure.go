package models

import "time"

// FeeStructure is one row of the per-class price list for an academic year.
// Amendments deactivate the superseded row instead of deleting it, so history
// stays intact. At most one active row exists per (class, fee type, year).
type FeeStructure struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ClassID      string    `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FeeType      FeeType   `json:"fee_type" gorm:"not null;type:varchar(50)" validate:"required"`
	Amount       float64   `json:"amount" gorm:"not null;type:decimal(10,2)" validate:"gte=0"`
	AcademicYear string    `json:"academic_year" gorm:"not null;index" validate:"required"`
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// FeeStatus is the derived paid/partial/pending standing of one student for
// one academic year. It is recomputed on read, never stored.
type FeeStatus struct {
	StudentID    string         `json:"student_id"`
	StudentName  string         `json:"student_name,omitempty"`
	AcademicYear string         `json:"academic_year"`
	TotalAmount  float64        `json:"total_amount"`
	PaidAmount   float64        `json:"paid_amount"`
	Status       FeeStatusValue `json:"status"`
}

// ComputeFeeStatus classifies paid against total. A student with no
// applicable fee structure rows (total = 0) is trivially paid.
func ComputeFeeStatus(total, paid float64) FeeStatusValue {
	switch {
	case paid >= total:
		return StatusPaid
	case paid > 0:
		return StatusPartial
	default:
		return StatusPending
	}
}
