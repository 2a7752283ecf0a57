package fees

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/config"
	"github.com/phhgsi/a.s.academy-sub000/app/database"
	"github.com/phhgsi/a.s.academy-sub000/app/models"
	"github.com/phhgsi/a.s.academy-sub000/app/services"
)

var validate = validator.New()

// RecordPaymentAPI appends one receipt to the payment ledger. The receipt
// number is proposed by the caller; the ledger only rejects collisions.
func RecordPaymentAPI(c *fiber.Ctx) error {
	type PaymentRequest struct {
		ReceiptNo     string  `json:"receipt_no" validate:"required"`
		StudentID     string  `json:"student_id" validate:"required,uuid"`
		Amount        float64 `json:"amount" validate:"required"`
		PaymentMethod string  `json:"payment_method" validate:"required"`
		PaymentDate   string  `json:"payment_date" validate:"required"`
		AcademicYear  string  `json:"academic_year"`
		FeeType       string  `json:"fee_type" validate:"required"`
		Remarks       string  `json:"remarks"`
		TransactionID *string `json:"transaction_id"`
	}

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	receiptNo, err := models.ParseReceiptNo(req.ReceiptNo)
	if err != nil {
		return err
	}
	paymentDate, err := models.ParseDateOnly("payment_date", req.PaymentDate)
	if err != nil {
		return err
	}

	user := c.Locals("user").(*models.User)

	payment := &models.FeePayment{
		ReceiptNo:     receiptNo,
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		PaymentDate:   paymentDate,
		AcademicYear:  services.ResolveYear(c, req.AcademicYear),
		FeeType:       models.FeeType(req.FeeType),
		Remarks:       req.Remarks,
		CollectedBy:   user.ID,
		TransactionID: req.TransactionID,
	}
	if err := database.RecordFeePayment(config.GetDB(), payment); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "payment": payment})
}

// ListPaymentsAPI returns ledger rows, filtered by any combination of
// receipt number, student, class, method, fee type, year and inclusive date
// range. Passing academic_year=all lifts the default current-year scope.
func ListPaymentsAPI(c *fiber.Ctx) error {
	filter := database.PaymentFilter{
		ReceiptNo:    c.Query("receipt_no"),
		StudentID:    c.Query("student_id"),
		ClassID:      c.Query("class_id"),
		Method:       models.PaymentMethod(c.Query("payment_method")),
		FeeType:      models.FeeType(c.Query("fee_type")),
		AcademicYear: services.ResolveYear(c, c.Query("academic_year")),
		Limit:        c.QueryInt("limit", 50),
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

	return c.JSON(fiber.Map{
		"success":  true,
		"payments": payments,
		"count":    len(payments),
	})
}

// GetFeeStatusForStudentAPI recomputes one student's paid/partial/pending
// standing for a year.
func GetFeeStatusForStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if studentID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Student ID is required"})
	}

	year := services.ResolveYear(c, c.Query("academic_year"))
	if year == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "No academic year given and none is active"})
	}

	status, err := database.GetFeeStatusForStudent(config.GetDB(), studentID, year)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "status": status})
}

// GetFeeStatusForYearAPI pages through every active student's standing.
func GetFeeStatusForYearAPI(c *fiber.Ctx) error {
	year := services.ResolveYear(c, c.Query("academic_year"))
	if year == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "No academic year given and none is active"})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 50)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	statuses, err := database.GetFeeStatusForYear(config.GetDB(), year, limit, offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"year":     year,
		"statuses": statuses,
		"count":    len(statuses),
		"page":     page,
		"has_more": len(statuses) == limit,
	})
}
