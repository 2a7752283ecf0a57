package academic

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/config"
	"github.com/phhgsi/a.s.academy-sub000/app/database"
	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

var validate = validator.New()

func GetAcademicYearsAPI(c *fiber.Ctx) error {
	years, err := database.GetAllAcademicYears(config.GetDB())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"years":   years,
		"count":   len(years),
	})
}

func GetCurrentAcademicYearAPI(c *fiber.Ctx) error {
	year, err := database.GetCurrentAcademicYear(config.GetDB())
	if err != nil {
		return err
	}
	if year == nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "No academic year is active"})
	}
	return c.JSON(fiber.Map{"success": true, "year": year})
}

func CreateAcademicYearAPI(c *fiber.Ctx) error {
	type CreateYearRequest struct {
		Label     string `json:"label" validate:"required"`
		StartDate string `json:"start_date" validate:"required"`
		EndDate   string `json:"end_date" validate:"required"`
		Activate  bool   `json:"activate"`
	}

	var req CreateYearRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	start, err := models.ParseDateOnly("start_date", req.StartDate)
	if err != nil {
		return err
	}
	end, err := models.ParseDateOnly("end_date", req.EndDate)
	if err != nil {
		return err
	}

	year := &models.AcademicYear{
		Label:     req.Label,
		StartDate: start,
		EndDate:   end,
	}
	if err := database.CreateAcademicYear(config.GetDB(), year, req.Activate); err != nil {
		return err
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "year": year})
}

func ActivateAcademicYearAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Academic year ID is required"})
	}

	year, err := database.ActivateAcademicYear(config.GetDB(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Academic year " + year.Label + " is now current",
		"year":    year,
	})
}

func DeleteAcademicYearAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Academic year ID is required"})
	}

	if err := database.DeleteAcademicYear(config.GetDB(), id); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Academic year deleted"})
}
