package models

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case Present, Absent, Late:
		return true
	default:
		return false
	}
}

// PaymentMethod defines how a fee payment was made.
type PaymentMethod string

const (
	MethodCash        PaymentMethod = "cash"
	MethodOnline      PaymentMethod = "online"
	MethodCheque      PaymentMethod = "cheque"
	MethodDemandDraft PaymentMethod = "demand-draft"
)

// Valid returns true when the payment method is a supported value.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodOnline, MethodCheque, MethodDemandDraft:
		return true
	default:
		return false
	}
}

// FeeType names a charge category on the fee structure and payment ledger.
type FeeType string

const (
	FeeTuition     FeeType = "Tuition"
	FeeAdmission   FeeType = "Admission"
	FeeExamination FeeType = "Examination"
	FeeSports      FeeType = "Sports"
	FeeLibrary     FeeType = "Library"
	FeeDevelopment FeeType = "Development"
	FeeTransport   FeeType = "Transport"
	FeeOther       FeeType = "Other"
)

// Valid returns true when the fee type is one of the known categories.
func (f FeeType) Valid() bool {
	switch f {
	case FeeTuition, FeeAdmission, FeeExamination, FeeSports,
		FeeLibrary, FeeDevelopment, FeeTransport, FeeOther:
		return true
	default:
		return false
	}
}

// FeeStatusValue classifies a student's standing against the fee structure.
type FeeStatusValue string

const (
	StatusPaid    FeeStatusValue = "paid"
	StatusPartial FeeStatusValue = "partial"
	StatusPending FeeStatusValue = "pending"
)
