package database

import (
	"database/sql"

	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

// GetFeeStatusForStudent recomputes a student's paid/partial/pending standing
// for one academic year. Missing structure rows and missing payments both
// read as zero, never as an error.
func GetFeeStatusForStudent(db *sql.DB, studentID, year string) (*models.FeeStatus, error) {
	var classID sql.NullString
	var firstName, lastName string
	err := db.QueryRow(`SELECT class_id, first_name, last_name FROM students WHERE id = $1`, studentID).
		Scan(&classID, &firstName, &lastName)
	if err == sql.ErrNoRows {
		return nil, &models.UnknownStudentError{StudentID: studentID}
	}
	if err != nil {
		return nil, storageErr("get student", err)
	}

	status := &models.FeeStatus{
		StudentID:    studentID,
		StudentName:  firstName + " " + lastName,
		AcademicYear: year,
	}

	if classID.Valid {
		err = db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM fee_structure
				WHERE class_id = $1 AND academic_year = $2 AND is_active = true`,
			classID.String, year).Scan(&status.TotalAmount)
		if err != nil {
			return nil, storageErr("sum fee structure", err)
		}
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM fee_payments
			WHERE student_id = $1 AND academic_year = $2`,
		studentID, year).Scan(&status.PaidAmount)
	if err != nil {
		return nil, storageErr("sum payments", err)
	}

	status.Status = models.ComputeFeeStatus(status.TotalAmount, status.PaidAmount)
	return status, nil
}

// GetFeeStatusForYear pages through every active student's standing for a
// year. The join aggregates in SQL so large rosters never load into memory
// at once.
func GetFeeStatusForYear(db *sql.DB, year string, limit, offset int) ([]*models.FeeStatus, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT s.id, s.first_name, s.last_name,
				  COALESCE(fs.total, 0) AS total_amount,
				  COALESCE(fp.paid, 0) AS paid_amount
			  FROM students s
			  LEFT JOIN (
				  SELECT class_id, SUM(amount) AS total
				  FROM fee_structure
				  WHERE academic_year = $1 AND is_active = true
				  GROUP BY class_id
			  ) fs ON fs.class_id = s.class_id
			  LEFT JOIN (
				  SELECT student_id, SUM(amount) AS paid
				  FROM fee_payments
				  WHERE academic_year = $1
				  GROUP BY student_id
			  ) fp ON fp.student_id = s.id
			  WHERE s.is_active = true
			  ORDER BY s.first_name, s.last_name, s.id
			  LIMIT $2 OFFSET $3`

	rows, err := db.Query(query, year, limit, offset)
	if err != nil {
		return nil, storageErr("list fee status", err)
	}
	defer rows.Close()

	var statuses []*models.FeeStatus
	for rows.Next() {
		st := &models.FeeStatus{AcademicYear: year}
		var firstName, lastName string
		err := rows.Scan(&st.StudentID, &firstName, &lastName, &st.TotalAmount, &st.PaidAmount)
		if err != nil {
			return nil, storageErr("scan fee status", err)
		}
		st.StudentName = firstName + " " + lastName
		st.Status = models.ComputeFeeStatus(st.TotalAmount, st.PaidAmount)
		statuses = append(statuses, st)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list fee status", err)
	}
	if statuses == nil {
		statuses = []*models.FeeStatus{}
	}
	return statuses, nil
}
