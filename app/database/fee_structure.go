package database

import (
	"database/sql"
	"fmt"

	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

// CreateFeeStructure records a price for a (class, fee type, year) tuple.
// Any existing active row for the tuple is deactivated in the same
// transaction, so history survives amendments and only one row stays active.
func CreateFeeStructure(db *sql.DB, fs *models.FeeStructure) error {
	if !fs.FeeType.Valid() {
		return &models.ValidationError{Field: "fee_type", Reason: "unknown fee type"}
	}
	if _, err := models.ParseNonNegativeAmount("amount", fs.Amount); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return storageErr("begin create fee structure", err)
	}
	defer tx.Rollback()

	supersede := `UPDATE fee_structure SET is_active = false, updated_at = NOW()
			  WHERE class_id = $1 AND fee_type = $2 AND academic_year = $3 AND is_active = true`
	if _, err := tx.Exec(supersede, fs.ClassID, string(fs.FeeType), fs.AcademicYear); err != nil {
		return storageErr("supersede fee structure", err)
	}

	insertQuery := `INSERT INTO fee_structure (class_id, fee_type, amount, academic_year, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = tx.QueryRow(insertQuery, fs.ClassID, string(fs.FeeType), fs.Amount, fs.AcademicYear).
		Scan(&fs.ID, &fs.CreatedAt, &fs.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "fee_structure_active_tuple") {
			return &models.ConflictError{Reason: "an active fee structure for this class, fee type and year already exists"}
		}
		return storageErr("insert fee structure", err)
	}

	fs.IsActive = true
	if err := tx.Commit(); err != nil {
		return storageErr("commit create fee structure", err)
	}
	return nil
}

// GetFeeStructures lists structure rows, optionally scoped to a class and/or
// year. Inactive (superseded) rows are included only when requested.
func GetFeeStructures(db *sql.DB, classID, year string, includeInactive bool) ([]*models.FeeStructure, error) {
	query := `SELECT id, class_id, fee_type, amount, academic_year, is_active, created_at, updated_at
			  FROM fee_structure WHERE 1=1`
	var args []interface{}
	argIndex := 1

	if classID != "" {
		query += fmt.Sprintf(" AND class_id = $%d", argIndex)
		args = append(args, classID)
		argIndex++
	}
	if year != "" {
		query += fmt.Sprintf(" AND academic_year = $%d", argIndex)
		args = append(args, year)
		argIndex++
	}
	if !includeInactive {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY academic_year DESC, fee_type`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, storageErr("list fee structures", err)
	}
	defer rows.Close()

	var structures []*models.FeeStructure
	for rows.Next() {
		fs := &models.FeeStructure{}
		var feeType string
		err := rows.Scan(&fs.ID, &fs.ClassID, &feeType, &fs.Amount, &fs.AcademicYear,
			&fs.IsActive, &fs.CreatedAt, &fs.UpdatedAt)
		if err != nil {
			return nil, storageErr("scan fee structure", err)
		}
		fs.FeeType = models.FeeType(feeType)
		structures = append(structures, fs)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list fee structures", err)
	}
	if structures == nil {
		structures = []*models.FeeStructure{}
	}
	return structures, nil
}
