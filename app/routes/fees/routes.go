package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/routes/auth"
	"github.com/phhgsi/a.s.academy-sub000/app/services"
)

// SetupFeesRoutes wires the fee structure catalog, the payment ledger and the
// derived fee status reads.
func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)
	api.Use(services.AcademicYearContext)

	api.Post("/payments", RecordPaymentAPI)
	api.Get("/payments", ListPaymentsAPI)

	api.Post("/structures", CreateFeeStructureAPI)
	api.Get("/structures", ListFeeStructuresAPI)

	api.Get("/status", GetFeeStatusForYearAPI)
	api.Get("/status/:studentId", GetFeeStatusForStudentAPI)
}
