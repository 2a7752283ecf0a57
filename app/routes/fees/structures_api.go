package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/config"
	"github.com/phhgsi/a.s.academy-sub000/app/database"
	"github.com/phhgsi/a.s.academy-sub000/app/models"
	"github.com/phhgsi/a.s.academy-sub000/app/services"
)

// CreateFeeStructureAPI sets the price for a (class, fee type, year) tuple.
// An existing active row for the tuple is superseded, not edited in place.
func CreateFeeStructureAPI(c *fiber.Ctx) error {
	type StructureRequest struct {
		ClassID      string  `json:"class_id" validate:"required,uuid"`
		FeeType      string  `json:"fee_type" validate:"required"`
		Amount       float64 `json:"amount" validate:"gte=0"`
		AcademicYear string  `json:"academic_year"`
	}

	var req StructureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	year := services.ResolveYear(c, req.AcademicYear)
	if year == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "No academic year given and none is active"})
	}

	fs := &models.FeeStructure{
		ClassID:      req.ClassID,
		FeeType:      models.FeeType(req.FeeType),
		Amount:       req.Amount,
		AcademicYear: year,
	}
	if err := database.CreateFeeStructure(config.GetDB(), fs); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "structure": fs})
}

// ListFeeStructuresAPI returns the price list, optionally scoped to a class
// and year. History (superseded rows) is included with include_inactive=true.
func ListFeeStructuresAPI(c *fiber.Ctx) error {
	structures, err := database.GetFeeStructures(
		config.GetDB(),
		c.Query("class_id"),
		services.ResolveYear(c, c.Query("academic_year")),
		c.QueryBool("include_inactive", false),
	)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"structures": structures,
		"count":      len(structures),
	})
}
