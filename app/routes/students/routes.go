package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/routes/auth"
)

// SetupStudentRoutes exposes the read side of the student directory used by
// the fee and attendance screens.
func SetupStudentRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/class/:classId", GetStudentsByClassAPI)
	api.Get("/:id", GetStudentByIDAPI)
}
