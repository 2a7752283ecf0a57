package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

func TestGetFeeStatusForStudentNoStructureNoPayments(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT class_id, first_name, last_name FROM students").
		WillReturnRows(sqlmock.NewRows([]string{"class_id", "first_name", "last_name"}).
			AddRow("cls-1", "Asha", "Patel"))
	mock.ExpectQuery("FROM fee_structure").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectQuery("FROM fee_payments").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))

	status, err := GetFeeStatusForStudent(db, "stu-1", "2024-2025")
	require.NoError(t, err)

	// No fee structure and no payments means trivially paid, not an error.
	assert.Equal(t, 0.0, status.TotalAmount)
	assert.Equal(t, 0.0, status.PaidAmount)
	assert.Equal(t, models.StatusPaid, status.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFeeStatusForStudentPartial(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT class_id, first_name, last_name FROM students").
		WillReturnRows(sqlmock.NewRows([]string{"class_id", "first_name", "last_name"}).
			AddRow("cls-1", "Asha", "Patel"))
	mock.ExpectQuery("FROM fee_structure").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1200.0))
	mock.ExpectQuery("FROM fee_payments").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(500.0))

	status, err := GetFeeStatusForStudent(db, "stu-1", "2024-2025")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, status.TotalAmount)
	assert.Equal(t, 500.0, status.PaidAmount)
	assert.Equal(t, models.StatusPartial, status.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFeeStatusForStudentUnassignedClass(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// A student without a class has no applicable structure rows; only the
	// payments sum runs.
	mock.ExpectQuery("SELECT class_id, first_name, last_name FROM students").
		WillReturnRows(sqlmock.NewRows([]string{"class_id", "first_name", "last_name"}).
			AddRow(nil, "Asha", "Patel"))
	mock.ExpectQuery("FROM fee_payments").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(300.0))

	status, err := GetFeeStatusForStudent(db, "stu-1", "2024-2025")
	require.NoError(t, err)
	assert.Equal(t, 0.0, status.TotalAmount)
	assert.Equal(t, 300.0, status.PaidAmount)
	assert.Equal(t, models.StatusPaid, status.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFeeStatusForStudentUnknown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT class_id, first_name, last_name FROM students").
		WillReturnRows(sqlmock.NewRows([]string{"class_id", "first_name", "last_name"}))

	_, err = GetFeeStatusForStudent(db, "missing", "2024-2025")

	var unknownErr *models.UnknownStudentError
	assert.ErrorAs(t, err, &unknownErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFeeStatusForYear(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("LEFT JOIN").
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "total_amount", "paid_amount"}).
			AddRow("stu-1", "Asha", "Patel", 1200.0, 1200.0).
			AddRow("stu-2", "Brian", "Okello", 1200.0, 400.0).
			AddRow("stu-3", "Chen", "Wei", 1200.0, 0.0))

	statuses, err := GetFeeStatusForYear(db, "2024-2025", 50, 0)
	require.NoError(t, err)
	require.Len(t, statuses, 3)
	assert.Equal(t, models.StatusPaid, statuses[0].Status)
	assert.Equal(t, models.StatusPartial, statuses[1].Status)
	assert.Equal(t, models.StatusPending, statuses[2].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
