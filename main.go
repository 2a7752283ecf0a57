package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/phhgsi/a.s.academy-sub000/app/config"
	"github.com/phhgsi/a.s.academy-sub000/app/database"
	"github.com/phhgsi/a.s.academy-sub000/app/models"
	"github.com/phhgsi/a.s.academy-sub000/app/routes/academic"
	"github.com/phhgsi/a.s.academy-sub000/app/routes/attendance"
	"github.com/phhgsi/a.s.academy-sub000/app/routes/auth"
	"github.com/phhgsi/a.s.academy-sub000/app/routes/fees"
	"github.com/phhgsi/a.s.academy-sub000/app/routes/reports"
	"github.com/phhgsi/a.s.academy-sub000/app/routes/students"
)

// apiErrorHandler maps the domain error taxonomy onto HTTP responses. The
// core never formats user-facing text; it returns kinds and fields, and this
// is the single place they turn into status codes.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	var duplicateErr *models.DuplicateReceiptError
	var unknownStudentErr *models.UnknownStudentError
	var notFoundErr *models.NotFoundError
	var conflictErr *models.ConflictError
	var storageErr *models.StorageError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"kind":    "validation",
			"field":   validationErr.Field,
			"error":   validationErr.Error(),
		})
	case errors.As(err, &duplicateErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success":    false,
			"kind":       "duplicate_receipt",
			"receipt_no": duplicateErr.ReceiptNo,
			"error":      duplicateErr.Error(),
		})
	case errors.As(err, &unknownStudentErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success":    false,
			"kind":       "unknown_student",
			"student_id": unknownStudentErr.StudentID,
			"error":      unknownStudentErr.Error(),
		})
	case errors.As(err, &notFoundErr):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"kind":    "not_found",
			"error":   notFoundErr.Error(),
		})
	case errors.As(err, &conflictErr):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"kind":    "conflict",
			"error":   conflictErr.Error(),
		})
	case errors.As(err, &storageErr):
		log.Printf("Storage error: %v", storageErr)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"kind":    "storage",
			"error":   "A storage error occurred, please retry the request",
		})
	}

	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	config.InitDB()
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "A.S. Academy Back Office",
		ErrorHandler: apiErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	auth.SetupAuthRoutes(app)
	academic.SetupAcademicRoutes(app)
	fees.SetupFeesRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	students.SetupStudentRoutes(app)
	reports.SetupReportRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
