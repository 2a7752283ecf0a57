package reports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/routes/auth"
	"github.com/phhgsi/a.s.academy-sub000/app/services"
)

// SetupReportRoutes wires the read-only CSV export gateway.
func SetupReportRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)
	api.Use(services.AcademicYearContext)

	api.Get("/payments/csv", ExportPaymentsCSVAPI)
	api.Get("/attendance/:classId/:date/csv", ExportClassAttendanceCSVAPI)
}
