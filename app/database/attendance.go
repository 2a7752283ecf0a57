package database

import (
	"database/sql"

	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

const attendanceUpsert = `INSERT INTO attendance (student_id, class_id, attendance_date, status, remarks, marked_by, created_at, updated_at)
		  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		  ON CONFLICT (student_id, class_id, attendance_date)
		  DO UPDATE SET status = EXCLUDED.status, remarks = EXCLUDED.remarks,
			  marked_by = EXCLUDED.marked_by, updated_at = NOW()
		  RETURNING id, created_at, updated_at`

// MarkAttendance records or corrects one student's attendance for a class and
// date. Re-marking the same key updates the existing row in place; it is
// never an error path.
func MarkAttendance(db *sql.DB, record *models.AttendanceRecord) error {
	if !record.Status.Valid() {
		return &models.ValidationError{Field: "status", Reason: "must be present, absent or late"}
	}
	if record.StudentID == "" {
		return &models.ValidationError{Field: "student_id", Reason: "student is required"}
	}
	if record.ClassID == "" {
		return &models.ValidationError{Field: "class_id", Reason: "class is required"}
	}

	err := db.QueryRow(attendanceUpsert,
		record.StudentID, record.ClassID, record.Date, string(record.Status),
		record.Remarks, record.MarkedBy,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return storageErr("mark attendance", err)
	}
	return nil
}

// MarkClassAttendance upserts a batch of entries for one class and date in a
// single transaction. Any invalid entry aborts the whole batch before or
// during the writes, so a day is never recorded partially. Students omitted
// from the payload keep whatever entry they already had.
func MarkClassAttendance(db *sql.DB, classID string, date models.DateOnly, entries []models.AttendanceEntry, markedBy *string) error {
	if classID == "" {
		return &models.ValidationError{Field: "class_id", Reason: "class is required"}
	}
	if len(entries) == 0 {
		return &models.ValidationError{Field: "entries", Reason: "at least one entry is required"}
	}
	for _, e := range entries {
		if e.StudentID == "" {
			return &models.ValidationError{Field: "student_id", Reason: "student is required"}
		}
		if !e.Status.Valid() {
			return &models.ValidationError{Field: "status", Reason: "must be present, absent or late"}
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return storageErr("begin mark class attendance", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(attendanceUpsert)
	if err != nil {
		return storageErr("prepare attendance upsert", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		var id string
		var createdAt, updatedAt sql.NullTime
		err := stmt.QueryRow(e.StudentID, classID, date, string(e.Status), e.Remarks, markedBy).
			Scan(&id, &createdAt, &updatedAt)
		if err != nil {
			return storageErr("upsert attendance for student "+e.StudentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit mark class attendance", err)
	}
	return nil
}

// GetAttendanceForStudent returns a student's entries over an inclusive date
// range, newest first.
func GetAttendanceForStudent(db *sql.DB, studentID string, from, to models.DateOnly) ([]*models.AttendanceRecord, error) {
	query := `SELECT id, student_id, class_id, attendance_date, status, remarks, marked_by, created_at, updated_at
			  FROM attendance
			  WHERE student_id = $1 AND attendance_date >= $2 AND attendance_date <= $3
			  ORDER BY attendance_date DESC`

	rows, err := db.Query(query, studentID, from, to)
	if err != nil {
		return nil, storageErr("list student attendance", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// GetAttendanceByClassAndDate returns every marked entry for a class on one
// date, with student names joined in for the register view.
func GetAttendanceByClassAndDate(db *sql.DB, classID string, date models.DateOnly) ([]*models.AttendanceRecord, error) {
	query := `SELECT a.id, a.student_id, a.class_id, a.attendance_date, a.status, a.remarks, a.marked_by, a.created_at, a.updated_at,
				  s.student_code, s.first_name, s.last_name
			  FROM attendance a
			  JOIN students s ON a.student_id = s.id
			  WHERE a.class_id = $1 AND a.attendance_date = $2
			  ORDER BY s.first_name, s.last_name`

	rows, err := db.Query(query, classID, date)
	if err != nil {
		return nil, storageErr("list class attendance", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		record := &models.AttendanceRecord{}
		var status, code, firstName, lastName string
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.ClassID, &record.Date, &status,
			&record.Remarks, &record.MarkedBy, &record.CreatedAt, &record.UpdatedAt,
			&code, &firstName, &lastName,
		)
		if err != nil {
			return nil, storageErr("scan attendance", err)
		}
		record.Status = models.AttendanceStatus(status)
		record.Student = &models.Student{ID: record.StudentID, StudentCode: code, FirstName: firstName, LastName: lastName}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list class attendance", err)
	}
	if records == nil {
		records = []*models.AttendanceRecord{}
	}
	return records, nil
}

// GetAttendanceSummary aggregates a student's marked days over an inclusive
// date range. No marked days yields HasData = false rather than a zero
// percentage.
func GetAttendanceSummary(db *sql.DB, studentID string, from, to models.DateOnly) (*models.AttendanceSummary, error) {
	query := `SELECT
				  COUNT(*) FILTER (WHERE status = 'present'),
				  COUNT(*) FILTER (WHERE status = 'absent'),
				  COUNT(*) FILTER (WHERE status = 'late'),
				  COUNT(*)
			  FROM attendance
			  WHERE student_id = $1 AND attendance_date >= $2 AND attendance_date <= $3`

	summary := &models.AttendanceSummary{StudentID: studentID}
	err := db.QueryRow(query, studentID, from, to).
		Scan(&summary.Present, &summary.Absent, &summary.Late, &summary.TotalMarked)
	if err != nil {
		return nil, storageErr("summarize attendance", err)
	}

	summary.Percentage, summary.HasData = models.AttendancePercentage(summary.Present, summary.TotalMarked)
	return summary, nil
}

func scanAttendanceRows(rows *sql.Rows) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord
	for rows.Next() {
		record := &models.AttendanceRecord{}
		var status string
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.ClassID, &record.Date, &status,
			&record.Remarks, &record.MarkedBy, &record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, storageErr("scan attendance", err)
		}
		record.Status = models.AttendanceStatus(status)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("read attendance rows", err)
	}
	if records == nil {
		records = []*models.AttendanceRecord{}
	}
	return records, nil
}
