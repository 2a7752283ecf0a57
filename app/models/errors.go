package models

import "fmt"

// The database layer returns these typed errors so the HTTP error handler can
// pick status codes with errors.As instead of matching message strings.

// ValidationError reports a rejected input value before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// DuplicateReceiptError reports a receipt number already present in the
// payment ledger. Receipts are globally unique.
type DuplicateReceiptError struct {
	ReceiptNo string
}

func (e *DuplicateReceiptError) Error() string {
	return fmt.Sprintf("receipt number %q has already been used", e.ReceiptNo)
}

// UnknownStudentError reports a payment or lookup against a student that does
// not exist or is no longer active.
type UnknownStudentError struct {
	StudentID string
}

func (e *UnknownStudentError) Error() string {
	return fmt.Sprintf("no active student with id %q", e.StudentID)
}

// NotFoundError reports a missing record of any entity kind.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// ConflictError reports an operation refused because of current state, such
// as deleting the active academic year.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// StorageError wraps an unexpected database failure with the operation that
// hit it. The underlying error stays reachable through Unwrap.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
