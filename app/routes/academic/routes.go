package academic

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/routes/auth"
)

// SetupAcademicRoutes wires the academic year registry endpoints.
func SetupAcademicRoutes(app *fiber.App) {
	api := app.Group("/api/academic-years")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAcademicYearsAPI)
	api.Get("/current", GetCurrentAcademicYearAPI)
	api.Post("/", CreateAcademicYearAPI)
	api.Post("/:id/activate", ActivateAcademicYearAPI)
	api.Delete("/:id", DeleteAcademicYearAPI)
}
