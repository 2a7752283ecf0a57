package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly carries a calendar date with a YYYY-MM-DD wire format. Postgres
// DATE columns scan into it and it binds as a query argument directly.
type DateOnly struct {
	time.Time
}

// ParseDateOnly parses a YYYY-MM-DD string, naming the offending field in the
// error so handlers can pass it through unchanged.
func ParseDateOnly(field, value string) (DateOnly, error) {
	if strings.TrimSpace(value) == "" {
		return DateOnly{}, &ValidationError{Field: field, Reason: "date is required (YYYY-MM-DD)"}
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return DateOnly{}, &ValidationError{Field: field, Reason: "must be a valid YYYY-MM-DD date"}
	}
	return DateOnly{Time: t}, nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Scan implements sql.Scanner for DATE and TIMESTAMP columns.
func (d *DateOnly) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		t, err := time.Parse(dateLayout, string(v))
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	}
	return fmt.Errorf("cannot scan %T into DateOnly", value)
}

// Value implements driver.Valuer.
func (d DateOnly) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Time.Format(dateLayout), nil
}

// ParseAmount accepts only strictly positive money values.
func ParseAmount(field string, value float64) (float64, error) {
	if value <= 0 {
		return 0, &ValidationError{Field: field, Reason: "amount must be greater than zero"}
	}
	return value, nil
}

// ParseNonNegativeAmount accepts zero as well; fee structure rows may be free.
func ParseNonNegativeAmount(field string, value float64) (float64, error) {
	if value < 0 {
		return 0, &ValidationError{Field: field, Reason: "amount cannot be negative"}
	}
	return value, nil
}

// ParseAmountString parses a positive money value from a form or query value.
func ParseAmountString(field, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "must be a number"}
	}
	return ParseAmount(field, v)
}

const maxReceiptNoLength = 40

// ParseReceiptNo normalizes a receipt number. Receipts come from printed
// books or counters, so letters, digits, '-' and '/' are allowed.
func ParseReceiptNo(raw string) (string, error) {
	receiptNo := strings.TrimSpace(raw)
	if receiptNo == "" {
		return "", &ValidationError{Field: "receipt_no", Reason: "receipt number is required"}
	}
	if len(receiptNo) > maxReceiptNoLength {
		return "", &ValidationError{Field: "receipt_no", Reason: fmt.Sprintf("receipt number cannot exceed %d characters", maxReceiptNoLength)}
	}
	for _, r := range receiptNo {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '-' || r == '/':
		default:
			return "", &ValidationError{Field: "receipt_no", Reason: "receipt number may only contain letters, digits, '-' and '/'"}
		}
	}
	return receiptNo, nil
}
