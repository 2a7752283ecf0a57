package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/config"
	"github.com/phhgsi/a.s.academy-sub000/app/database"
	"github.com/phhgsi/a.s.academy-sub000/app/models"
	"github.com/phhgsi/a.s.academy-sub000/app/services"
)

// ExportPaymentsCSVAPI renders a filtered payment ledger snapshot as CSV. It
// only consumes the ledger's read side and never mutates core state.
func ExportPaymentsCSVAPI(c *fiber.Ctx) error {
	filter := database.PaymentFilter{
		ReceiptNo:    c.Query("receipt_no"),
		StudentID:    c.Query("student_id"),
		ClassID:      c.Query("class_id"),
		Method:       models.PaymentMethod(c.Query("payment_method")),
		FeeType:      models.FeeType(c.Query("fee_type")),
		AcademicYear: services.ResolveYear(c, c.Query("academic_year")),
		Limit:        c.QueryInt("limit", 1000),
		Offset:       c.QueryInt("offset", 0),
	}

	if from := c.Query("date_from"); from != "" {
		d, err := models.ParseDateOnly("date_from", from)
		if err != nil {
			return err
		}
		filter.DateFrom = &d
	}
	if to := c.Query("date_to"); to != "" {
		d, err := models.ParseDateOnly("date_to", to)
		if err != nil {
			return err
		}
		filter.DateTo = &d
	}

	payments, err := database.ListFeePayments(config.GetDB(), filter)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"receipt_no", "payment_date", "student_code", "student_name", "amount", "payment_method", "fee_type", "academic_year", "remarks"})
	for _, p := range payments {
		name, code := "", ""
		if p.Student != nil {
			name = p.Student.FullName()
			code = p.Student.StudentCode
		}
		w.Write([]string{
			p.ReceiptNo,
			p.PaymentDate.Format("2006-01-02"),
			code,
			name,
			strconv.FormatFloat(p.Amount, 'f', 2, 64),
			string(p.PaymentMethod),
			string(p.FeeType),
			p.AcademicYear,
			p.Remarks,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", `attachment; filename="fee_payments.csv"`)
	return c.Send(buf.Bytes())
}

// ExportClassAttendanceCSVAPI renders one class register for one date as CSV.
func ExportClassAttendanceCSVAPI(c *fiber.Ctx) error {
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

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write([]string{"date", "student_code", "student_name", "status", "remarks"})
	for _, r := range records {
		name, code := "", ""
		if r.Student != nil {
			name = r.Student.FullName()
			code = r.Student.StudentCode
		}
		w.Write([]string{dateStr, code, name, string(r.Status), r.Remarks})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance_%s.csv"`, dateStr))
	return c.Send(buf.Bytes())
}
