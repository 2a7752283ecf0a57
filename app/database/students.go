package database

import (
	"database/sql"

	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

// IsActiveStudent reports whether the student exists and is active. The
// ledger consults this before accepting a payment.
func IsActiveStudent(db *sql.DB, studentID string) (bool, error) {
	var active bool
	err := db.QueryRow(`SELECT is_active FROM students WHERE id = $1`, studentID).Scan(&active)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, storageErr("check student", err)
	}
	return active, nil
}

// GetStudentByID fetches one student or a NotFoundError.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT id, student_code, first_name, last_name, COALESCE(class_id::text, ''), COALESCE(academic_year, ''), is_active, created_at, updated_at
			  FROM students WHERE id = $1`

	student := &models.Student{}
	err := db.QueryRow(query, id).Scan(
		&student.ID, &student.StudentCode, &student.FirstName, &student.LastName,
		&student.ClassID, &student.AcademicYear, &student.IsActive,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "student", ID: id}
	}
	if err != nil {
		return nil, storageErr("get student", err)
	}
	return student, nil
}

// GetStudentsByClass returns the active roster of a class, ordered by name.
// The attendance register uses it to render the day's marking sheet.
func GetStudentsByClass(db *sql.DB, classID string) ([]*models.Student, error) {
	query := `SELECT id, student_code, first_name, last_name, COALESCE(class_id::text, ''), COALESCE(academic_year, ''), is_active, created_at, updated_at
			  FROM students
			  WHERE class_id = $1 AND is_active = true
			  ORDER BY first_name, last_name`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, storageErr("list students", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		err := rows.Scan(
			&student.ID, &student.StudentCode, &student.FirstName, &student.LastName,
			&student.ClassID, &student.AcademicYear, &student.IsActive,
			&student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			return nil, storageErr("scan student", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list students", err)
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}
