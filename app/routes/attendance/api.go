package attendance

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/config"
	"github.com/phhgsi/a.s.academy-sub000/app/database"
	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

var validate = validator.New()

// MarkAttendanceAPI records or corrects one student's entry for a class and
// date. Re-submitting the same (student, class, date) updates the row.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	type MarkRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		ClassID   string `json:"class_id" validate:"required,uuid"`
		Date      string `json:"date" validate:"required"`
		Status    string `json:"status" validate:"required,oneof=present absent late"`
		Remarks   string `json:"remarks"`
	}

	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	date, err := models.ParseDateOnly("date", req.Date)
	if err != nil {
		return err
	}

	user := c.Locals("user").(*models.User)
	markedBy := user.ID

	record := &models.AttendanceRecord{
		StudentID: req.StudentID,
		ClassID:   req.ClassID,
		Date:      date,
		Status:    models.AttendanceStatus(req.Status),
		Remarks:   req.Remarks,
		MarkedBy:  &markedBy,
	}
	if err := database.MarkAttendance(config.GetDB(), record); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Attendance record saved successfully",
		"attendance": record,
	})
}

// MarkClassAttendanceAPI upserts a batch of entries for one class and date in
// one transaction. Students left out of the payload keep their prior entry;
// one invalid entry aborts the whole batch.
func MarkClassAttendanceAPI(c *fiber.Ctx) error {
	type BatchRequest struct {
		ClassID string                   `json:"class_id" validate:"required,uuid"`
		Date    string                   `json:"date" validate:"required"`
		Entries []models.AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
	}

	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	date, err := models.ParseDateOnly("date", req.Date)
	if err != nil {
		return err
	}

	user := c.Locals("user").(*models.User)
	markedBy := user.ID

	if err := database.MarkClassAttendance(config.GetDB(), req.ClassID, date, req.Entries, &markedBy); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attendance saved for class",
		"count":   len(req.Entries),
	})
}

// GetAttendanceByClassAndDateAPI returns the register for one class and day.
func GetAttendanceByClassAndDateAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	dateStr := c.Params("date")
	if classID == "" || dateStr == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Class ID and date are required"})
	}

	date, err := models.ParseDateOnly("date", dateStr)
	if err != nil {
		return err
	}

	records, err := database.GetAttendanceByClassAndDate(config.GetDB(), classID, date)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"attendance": records,
		"count":      len(records),
		"date":       dateStr,
		"class_id":   classID,
	})
}

// GetAttendanceForStudentAPI returns a student's entries over a date range.
func GetAttendanceForStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if studentID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Student ID is required"})
	}

	from, err := models.ParseDateOnly("date_from", c.Query("date_from"))
	if err != nil {
		return err
	}
	to, err := models.ParseDateOnly("date_to", c.Query("date_to"))
	if err != nil {
		return err
	}

	records, err := database.GetAttendanceForStudent(config.GetDB(), studentID, from, to)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"attendance": records,
		"count":      len(records),
		"student_id": studentID,
	})
}

// GetAttendanceSummaryAPI returns present/absent/late counts and the
// percentage for a student over a date range. With no marked days the
// response says so explicitly instead of reporting zero.
func GetAttendanceSummaryAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if studentID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Student ID is required"})
	}

	from, err := models.ParseDateOnly("date_from", c.Query("date_from"))
	if err != nil {
		return err
	}
	to, err := models.ParseDateOnly("date_to", c.Query("date_to"))
	if err != nil {
		return err
	}

	summary, err := database.GetAttendanceSummary(config.GetDB(), studentID, from, to)
	if err != nil {
		return err
	}
	if !summary.HasData {
		return c.JSON(fiber.Map{
			"success": true,
			"summary": summary,
			"message": "No attendance records in this range",
		})
	}

	return c.JSON(fiber.Map{"success": true, "summary": summary})
}
