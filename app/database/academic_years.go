package database

import (
	"database/sql"

	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

// GetAllAcademicYears returns every year, newest session first.
func GetAllAcademicYears(db *sql.DB) ([]*models.AcademicYear, error) {
	query := `SELECT id, label, start_date, end_date, is_active, created_at, updated_at
			  FROM academic_years
			  ORDER BY start_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, storageErr("list academic years", err)
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		year := &models.AcademicYear{}
		err := rows.Scan(&year.ID, &year.Label, &year.StartDate, &year.EndDate,
			&year.IsActive, &year.CreatedAt, &year.UpdatedAt)
		if err != nil {
			return nil, storageErr("scan academic year", err)
		}
		years = append(years, year)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list academic years", err)
	}
	if years == nil {
		years = []*models.AcademicYear{}
	}
	return years, nil
}

// GetAcademicYearByID fetches one year or a NotFoundError.
func GetAcademicYearByID(db *sql.DB, id string) (*models.AcademicYear, error) {
	query := `SELECT id, label, start_date, end_date, is_active, created_at, updated_at
			  FROM academic_years WHERE id = $1`

	year := &models.AcademicYear{}
	err := db.QueryRow(query, id).Scan(&year.ID, &year.Label, &year.StartDate, &year.EndDate,
		&year.IsActive, &year.CreatedAt, &year.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "academic year", ID: id}
	}
	if err != nil {
		return nil, storageErr("get academic year", err)
	}
	return year, nil
}

// GetCurrentAcademicYear returns the single active year, or nil when no year
// has been activated yet.
func GetCurrentAcademicYear(db *sql.DB) (*models.AcademicYear, error) {
	query := `SELECT id, label, start_date, end_date, is_active, created_at, updated_at
			  FROM academic_years WHERE is_active = true`

	year := &models.AcademicYear{}
	err := db.QueryRow(query).Scan(&year.ID, &year.Label, &year.StartDate, &year.EndDate,
		&year.IsActive, &year.CreatedAt, &year.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get current academic year", err)
	}
	return year, nil
}

// CreateAcademicYear validates and inserts a new year. When activate is set,
// deactivating every other year and inserting the new active one happen in
// the same transaction, so readers never observe two active years.
func CreateAcademicYear(db *sql.DB, year *models.AcademicYear, activate bool) error {
	if err := models.ValidateYearLabel(year.Label); err != nil {
		return err
	}
	if err := models.ValidateYearDates(year.StartDate, year.EndDate); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return storageErr("begin create academic year", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM academic_years WHERE label = $1)`, year.Label).Scan(&exists); err != nil {
		return storageErr("check academic year label", err)
	}
	if exists {
		return &models.ValidationError{Field: "label", Reason: "label already exists"}
	}

	if activate {
		if _, err := tx.Exec(`UPDATE academic_years SET is_active = false, updated_at = NOW() WHERE is_active = true`); err != nil {
			return storageErr("deactivate academic years", err)
		}
	}

	insertQuery := `INSERT INTO academic_years (label, start_date, end_date, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	year.IsActive = activate
	err = tx.QueryRow(insertQuery, year.Label, year.StartDate, year.EndDate, activate).
		Scan(&year.ID, &year.CreatedAt, &year.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "academic_years_label_key") {
			return &models.ValidationError{Field: "label", Reason: "label already exists"}
		}
		if isUniqueViolation(err, "academic_years_single_active") {
			return &models.ConflictError{Reason: "another academic year was activated concurrently"}
		}
		return storageErr("insert academic year", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit create academic year", err)
	}
	return nil
}

// ActivateAcademicYear makes the target year the current one. The
// deactivate-all / activate-one pair runs in a single transaction; a reader
// never sees zero or two active years mid-transition. This is the only write
// path for the system-wide current year.
func ActivateAcademicYear(db *sql.DB, id string) (*models.AcademicYear, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, storageErr("begin activate academic year", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE academic_years SET is_active = false, updated_at = NOW() WHERE is_active = true`); err != nil {
		return nil, storageErr("deactivate academic years", err)
	}

	query := `UPDATE academic_years SET is_active = true, updated_at = NOW()
			  WHERE id = $1
			  RETURNING id, label, start_date, end_date, is_active, created_at, updated_at`

	year := &models.AcademicYear{}
	err = tx.QueryRow(query, id).Scan(&year.ID, &year.Label, &year.StartDate, &year.EndDate,
		&year.IsActive, &year.CreatedAt, &year.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "academic year", ID: id}
	}
	if err != nil {
		if isUniqueViolation(err, "academic_years_single_active") {
			return nil, &models.ConflictError{Reason: "another academic year was activated concurrently"}
		}
		return nil, storageErr("activate academic year", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("commit activate academic year", err)
	}
	return year, nil
}

// DeleteAcademicYear removes a year that is neither active nor referenced by
// any student row. The delete is refused, never cascaded, to protect
// historical records.
func DeleteAcademicYear(db *sql.DB, id string) error {
	tx, err := db.Begin()
	if err != nil {
		return storageErr("begin delete academic year", err)
	}
	defer tx.Rollback()

	var label string
	var isActive bool
	err = tx.QueryRow(`SELECT label, is_active FROM academic_years WHERE id = $1`, id).Scan(&label, &isActive)
	if err == sql.ErrNoRows {
		return &models.NotFoundError{Entity: "academic year", ID: id}
	}
	if err != nil {
		return storageErr("get academic year", err)
	}
	if isActive {
		return &models.ConflictError{Reason: "cannot delete the active academic year"}
	}

	var referenced bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM students WHERE academic_year = $1)`, label).Scan(&referenced); err != nil {
		return storageErr("check academic year references", err)
	}
	if referenced {
		return &models.ConflictError{Reason: "academic year " + label + " is referenced by student records"}
	}

	if _, err := tx.Exec(`DELETE FROM academic_years WHERE id = $1`, id); err != nil {
		return storageErr("delete academic year", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit delete academic year", err)
	}
	return nil
}
