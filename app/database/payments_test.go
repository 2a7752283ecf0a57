package database

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

func testPayment(t *testing.T) *models.FeePayment {
	t.Helper()
	date, err := models.ParseDateOnly("payment_date", "2024-06-01")
	require.NoError(t, err)
	return &models.FeePayment{
		ReceiptNo:     "RCP0001",
		StudentID:     "6f1e06f6-0c3e-4b8e-9a39-5b1f8a2a2f01",
		Amount:        500,
		PaymentMethod: models.MethodCash,
		PaymentDate:   date,
		AcademicYear:  "2024-2025",
		FeeType:       models.FeeTuition,
		CollectedBy:   "0e42b7a2-8f53-4a43-a1d2-52f4f7f02b11",
	}
}

func TestRecordFeePaymentSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_active FROM students WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	created := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO fee_payments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("pay-1", created))
	mock.ExpectCommit()

	payment := testPayment(t)
	require.NoError(t, RecordFeePayment(db, payment))
	assert.Equal(t, "pay-1", payment.ID)
	assert.Equal(t, created, payment.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFeePaymentDuplicateReceiptFastPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_active FROM students WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	payment := testPayment(t)
	err = RecordFeePayment(db, payment)

	var dupErr *models.DuplicateReceiptError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "RCP0001", dupErr.ReceiptNo)
	// No insert was attempted; the pre-existing row is untouched.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFeePaymentDuplicateReceiptConstraint(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Concurrent insert slips past the fast path; the unique index is the
	// authoritative guard.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_active FROM students WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("INSERT INTO fee_payments").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "fee_payments_receipt_no_key"})
	mock.ExpectRollback()

	err = RecordFeePayment(db, testPayment(t))

	var dupErr *models.DuplicateReceiptError
	assert.ErrorAs(t, err, &dupErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFeePaymentUnknownStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_active FROM students WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}))
	mock.ExpectRollback()

	err = RecordFeePayment(db, testPayment(t))

	var unknownErr *models.UnknownStudentError
	assert.ErrorAs(t, err, &unknownErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFeePaymentInactiveStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_active FROM students WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(false))
	mock.ExpectRollback()

	err = RecordFeePayment(db, testPayment(t))

	var unknownErr *models.UnknownStudentError
	assert.ErrorAs(t, err, &unknownErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFeePaymentValidation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var vErr *models.ValidationError

	payment := testPayment(t)
	payment.Amount = 0
	assert.ErrorAs(t, RecordFeePayment(db, payment), &vErr)

	payment = testPayment(t)
	payment.PaymentMethod = "card"
	assert.ErrorAs(t, RecordFeePayment(db, payment), &vErr)

	payment = testPayment(t)
	payment.FeeType = "Hostel"
	assert.ErrorAs(t, RecordFeePayment(db, payment), &vErr)

	payment = testPayment(t)
	payment.AcademicYear = ""
	assert.ErrorAs(t, RecordFeePayment(db, payment), &vErr)

	// No transaction was ever opened.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordThenListByReceiptNo(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT is_active FROM students WHERE id").
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(true))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("INSERT INTO fee_payments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("pay-1", created))
	mock.ExpectCommit()

	payment := testPayment(t)
	require.NoError(t, RecordFeePayment(db, payment))

	cols := []string{"id", "receipt_no", "student_id", "amount", "payment_method", "payment_date",
		"academic_year", "fee_type", "remarks", "collected_by", "transaction_id", "created_at",
		"student_code", "first_name", "last_name"}
	mock.ExpectQuery("AND p.receipt_no =").
		WithArgs(payment.ReceiptNo).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(payment.ID, payment.ReceiptNo, payment.StudentID, payment.Amount,
				string(payment.PaymentMethod), payment.PaymentDate.Time, payment.AcademicYear,
				string(payment.FeeType), payment.Remarks, payment.CollectedBy, nil,
				payment.CreatedAt, "S001", "Asha", "Patel"))

	// The ledger read filtered to the receipt returns exactly the record
	// that was written.
	got, err := ListFeePayments(db, PaymentFilter{ReceiptNo: payment.ReceiptNo})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, payment.ReceiptNo, got[0].ReceiptNo)
	assert.Equal(t, payment.StudentID, got[0].StudentID)
	assert.Equal(t, payment.Amount, got[0].Amount)
	assert.Equal(t, payment.PaymentMethod, got[0].PaymentMethod)
	assert.Equal(t, payment.FeeType, got[0].FeeType)
	assert.Equal(t, payment.AcademicYear, got[0].AcademicYear)
	assert.Equal(t, payment.CreatedAt, got[0].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFeePaymentsRowError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "receipt_no", "student_id", "amount", "payment_method", "payment_date",
		"academic_year", "fee_type", "remarks", "collected_by", "transaction_id", "created_at",
		"student_code", "first_name", "last_name"}
	payDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(cols).
		AddRow("pay-1", "RCP0001", "stu-1", 500.0, "cash", payDate,
			"2024-2025", "Tuition", "", "usr-1", nil, payDate, "S001", "Asha", "Patel").
		RowError(0, errors.New("connection reset"))

	mock.ExpectQuery("FROM fee_payments p").WillReturnRows(rows)

	_, err = ListFeePayments(db, PaymentFilter{AcademicYear: "2024-2025"})

	var sErr *models.StorageError
	assert.ErrorAs(t, err, &sErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListFeePayments(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "receipt_no", "student_id", "amount", "payment_method", "payment_date",
		"academic_year", "fee_type", "remarks", "collected_by", "transaction_id", "created_at",
		"student_code", "first_name", "last_name"}
	payDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery("ORDER BY p.payment_date DESC, p.created_at DESC").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("pay-2", "RCP0002", "stu-1", 300.0, "online", payDate,
				"2024-2025", "Tuition", "", "usr-1", nil, created.Add(time.Hour), "S001", "Asha", "Patel").
			AddRow("pay-1", "RCP0001", "stu-1", 500.0, "cash", payDate,
				"2024-2025", "Tuition", "term one", "usr-1", nil, created, "S001", "Asha", "Patel"))

	payments, err := ListFeePayments(db, PaymentFilter{
		StudentID:    "stu-1",
		AcademicYear: "2024-2025",
		Limit:        50,
	})
	require.NoError(t, err)
	require.Len(t, payments, 2)

	// Same-day payments keep creation order, newest first.
	assert.Equal(t, "RCP0002", payments[0].ReceiptNo)
	assert.Equal(t, "RCP0001", payments[1].ReceiptNo)
	assert.Equal(t, models.MethodCash, payments[1].PaymentMethod)
	assert.Equal(t, "Asha Patel", payments[1].Student.FullName())
	assert.NoError(t, mock.ExpectationsWereMet())
}
