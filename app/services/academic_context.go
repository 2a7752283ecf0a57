package services

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/config"
	"github.com/phhgsi/a.s.academy-sub000/app/database"
)

const currentYearKey = "current_academic_year"

// AllYears is the request value that drops the academic-year scope from a
// list filter instead of falling back to the active year.
const AllYears = "all"

// AcademicYearContext re-reads the active academic year once per request and
// stashes its label in the request locals. Handlers that accept an optional
// year fall back to this value. The registry's activate operation is the only
// writer, so the label is never cached beyond a single request.
func AcademicYearContext(c *fiber.Ctx) error {
	year, err := database.GetCurrentAcademicYear(config.GetDB())
	if err == nil && year != nil {
		c.Locals(currentYearKey, year.Label)
	}
	return c.Next()
}

// CurrentYearLabel returns the active year label loaded for this request, or
// "" when no year has been activated yet.
func CurrentYearLabel(c *fiber.Ctx) string {
	if label, ok := c.Locals(currentYearKey).(string); ok {
		return label
	}
	return ""
}

// ResolveYear prefers an explicitly requested year label over the
// request-scoped current one. Requesting AllYears returns "" so reads can
// span every session even while a year is active.
func ResolveYear(c *fiber.Ctx, requested string) string {
	if requested == AllYears {
		return ""
	}
	if requested != "" {
		return requested
	}
	return CurrentYearLabel(c)
}
