package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

func TestCreateFeeStructureSupersedes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectBegin()
	// The previous active row for the tuple is deactivated, never deleted.
	mock.ExpectExec("UPDATE fee_structure SET is_active = false").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO fee_structure").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("fs-2", now, now))
	mock.ExpectCommit()

	fs := &models.FeeStructure{
		ClassID:      "cls-1",
		FeeType:      models.FeeTuition,
		Amount:       1500,
		AcademicYear: "2024-2025",
	}
	require.NoError(t, CreateFeeStructure(db, fs))
	assert.True(t, fs.IsActive)
	assert.Equal(t, "fs-2", fs.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFeeStructureValidation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var vErr *models.ValidationError

	fs := &models.FeeStructure{ClassID: "cls-1", FeeType: "Hostel", Amount: 100, AcademicYear: "2024-2025"}
	assert.ErrorAs(t, CreateFeeStructure(db, fs), &vErr)

	fs = &models.FeeStructure{ClassID: "cls-1", FeeType: models.FeeTuition, Amount: -5, AcademicYear: "2024-2025"}
	assert.ErrorAs(t, CreateFeeStructure(db, fs), &vErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}
