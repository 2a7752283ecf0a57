package database

import (
	"database/sql"
	"fmt"

	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

// RecordFeePayment appends one receipt to the payment ledger. All
// preconditions run before the insert and the whole operation is one
// transaction: either the full row is committed or nothing is. The unique
// index on receipt_no is the real guard against concurrent collisions; the
// EXISTS pre-check only produces a friendlier error on the common path.
func RecordFeePayment(db *sql.DB, payment *models.FeePayment) error {
	if _, err := models.ParseAmount("amount", payment.Amount); err != nil {
		return err
	}
	if !payment.PaymentMethod.Valid() {
		return &models.ValidationError{Field: "payment_method", Reason: "must be cash, online, cheque or demand-draft"}
	}
	if !payment.FeeType.Valid() {
		return &models.ValidationError{Field: "fee_type", Reason: "unknown fee type"}
	}
	if payment.AcademicYear == "" {
		return &models.ValidationError{Field: "academic_year", Reason: "academic year is required"}
	}

	tx, err := db.Begin()
	if err != nil {
		return storageErr("begin record payment", err)
	}
	defer tx.Rollback()

	var studentActive bool
	err = tx.QueryRow(`SELECT is_active FROM students WHERE id = $1`, payment.StudentID).Scan(&studentActive)
	if err == sql.ErrNoRows {
		return &models.UnknownStudentError{StudentID: payment.StudentID}
	}
	if err != nil {
		return storageErr("check student", err)
	}
	if !studentActive {
		return &models.UnknownStudentError{StudentID: payment.StudentID}
	}

	var receiptUsed bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM fee_payments WHERE receipt_no = $1)`, payment.ReceiptNo).Scan(&receiptUsed); err != nil {
		return storageErr("check receipt number", err)
	}
	if receiptUsed {
		return &models.DuplicateReceiptError{ReceiptNo: payment.ReceiptNo}
	}

	insertQuery := `INSERT INTO fee_payments (receipt_no, student_id, amount, payment_method, payment_date,
				academic_year, fee_type, remarks, collected_by, transaction_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
			  RETURNING id, created_at`

	err = tx.QueryRow(insertQuery,
		payment.ReceiptNo, payment.StudentID, payment.Amount, string(payment.PaymentMethod),
		payment.PaymentDate, payment.AcademicYear, string(payment.FeeType), payment.Remarks,
		payment.CollectedBy, payment.TransactionID,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "fee_payments_receipt_no_key") {
			return &models.DuplicateReceiptError{ReceiptNo: payment.ReceiptNo}
		}
		return storageErr("insert payment", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit record payment", err)
	}
	return nil
}

// PaymentFilter composes the optional, independent filters of the ledger's
// read side. Zero values mean "no filter"; the date range is inclusive.
type PaymentFilter struct {
	ReceiptNo    string
	StudentID    string
	ClassID      string
	Method       models.PaymentMethod
	FeeType      models.FeeType
	AcademicYear string
	DateFrom     *models.DateOnly
	DateTo       *models.DateOnly
	Limit        int
	Offset       int
}

// ListFeePayments returns ledger rows newest first, ordered by payment date
// then creation time so same-day receipts keep a stable order.
func ListFeePayments(db *sql.DB, filter PaymentFilter) ([]*models.FeePayment, error) {
	query := `SELECT p.id, p.receipt_no, p.student_id, p.amount, p.payment_method, p.payment_date,
				  p.academic_year, p.fee_type, p.remarks, p.collected_by, p.transaction_id, p.created_at,
				  s.student_code, s.first_name, s.last_name
			  FROM fee_payments p
			  JOIN students s ON p.student_id = s.id
			  WHERE 1=1`

	var args []interface{}
	argIndex := 1

	if filter.ReceiptNo != "" {
		query += fmt.Sprintf(" AND p.receipt_no = $%d", argIndex)
		args = append(args, filter.ReceiptNo)
		argIndex++
	}
	if filter.StudentID != "" {
		query += fmt.Sprintf(" AND p.student_id = $%d", argIndex)
		args = append(args, filter.StudentID)
		argIndex++
	}
	if filter.ClassID != "" {
		query += fmt.Sprintf(" AND s.class_id = $%d", argIndex)
		args = append(args, filter.ClassID)
		argIndex++
	}
	if filter.Method != "" {
		query += fmt.Sprintf(" AND p.payment_method = $%d", argIndex)
		args = append(args, string(filter.Method))
		argIndex++
	}
	if filter.FeeType != "" {
		query += fmt.Sprintf(" AND p.fee_type = $%d", argIndex)
		args = append(args, string(filter.FeeType))
		argIndex++
	}
	if filter.AcademicYear != "" {
		query += fmt.Sprintf(" AND p.academic_year = $%d", argIndex)
		args = append(args, filter.AcademicYear)
		argIndex++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND p.payment_date >= $%d", argIndex)
		args = append(args, *filter.DateFrom)
		argIndex++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND p.payment_date <= $%d", argIndex)
		args = append(args, *filter.DateTo)
		argIndex++
	}

	query += " ORDER BY p.payment_date DESC, p.created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
		argIndex++
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filter.Offset)
		argIndex++
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, storageErr("list payments", err)
	}
	defer rows.Close()

	var payments []*models.FeePayment
	for rows.Next() {
		p := &models.FeePayment{}
		var method, feeType string
		var code, firstName, lastName string
		err := rows.Scan(
			&p.ID, &p.ReceiptNo, &p.StudentID, &p.Amount, &method, &p.PaymentDate,
			&p.AcademicYear, &feeType, &p.Remarks, &p.CollectedBy, &p.TransactionID, &p.CreatedAt,
			&code, &firstName, &lastName,
		)
		if err != nil {
			return nil, storageErr("scan payment", err)
		}
		p.PaymentMethod = models.PaymentMethod(method)
		p.FeeType = models.FeeType(feeType)
		p.Student = &models.Student{ID: p.StudentID, StudentCode: code, FirstName: firstName, LastName: lastName}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list payments", err)
	}
	if payments == nil {
		payments = []*models.FeePayment{}
	}
	return payments, nil
}
