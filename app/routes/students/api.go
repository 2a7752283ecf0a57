package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/config"
	"github.com/phhgsi/a.s.academy-sub000/app/database"
)

func GetStudentByIDAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Student ID is required"})
	}

	student, err := database.GetStudentByID(config.GetDB(), id)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "student": student})
}

func GetStudentsByClassAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Class ID is required"})
	}

	roster, err := database.GetStudentsByClass(config.GetDB(), classID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"students": roster,
		"count":    len(roster),
	})
}
