package models

import "time"

// FeePayment is one immutable receipt on the payment ledger. Rows are created
// once and never updated or hard-deleted; the receipt number is unique across
// all time.
type FeePayment struct {
	ID            string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ReceiptNo     string        `json:"receipt_no" gorm:"uniqueIndex;not null" validate:"required"`
	StudentID     string        `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount        float64       `json:"amount" gorm:"not null;type:decimal(10,2)" validate:"required,gt=0"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"not null;type:varchar(20)" validate:"required"`
	PaymentDate   DateOnly      `json:"payment_date" gorm:"not null;index" validate:"required"`
	AcademicYear  string        `json:"academic_year" gorm:"not null;index" validate:"required"`
	FeeType       FeeType       `json:"fee_type" gorm:"not null;type:varchar(50)" validate:"required"`
	Remarks       string        `json:"remarks,omitempty" gorm:"type:text"`
	CollectedBy   string        `json:"collected_by" gorm:"not null;type:uuid" validate:"required,uuid"`
	TransactionID *string       `json:"transaction_id,omitempty" gorm:"index"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
