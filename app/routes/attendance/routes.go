package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/routes/auth"
)

// SetupAttendanceRoutes wires the attendance register endpoints.
func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Post("/", MarkAttendanceAPI)
	api.Post("/batch", MarkClassAttendanceAPI)
	api.Get("/class/:classId/:date", GetAttendanceByClassAndDateAPI)
	api.Get("/student/:studentId", GetAttendanceForStudentAPI)
	api.Get("/student/:studentId/summary", GetAttendanceSummaryAPI)
}
