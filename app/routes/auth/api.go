package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/phhgsi/a.s.academy-sub000/app/config"
	"github.com/phhgsi/a.s.academy-sub000/app/database"
	"github.com/phhgsi/a.s.academy-sub000/app/models"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Email and password are required"})
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil || !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid email or password"})
	}

	sessionID := GenerateSessionID()
	if err := database.CreateSession(config.GetDB(), sessionID.String(), user.ID, GetSessionExpiry()); err != nil {
		return err
	}

	token, err := GenerateJWT(user.ID, user.Email, user.FirstName, user.LastName, user.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  GetSessionExpiry(),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user": fiber.Map{
			"id":         user.ID,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"role":       user.Role,
		},
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"success": true, "message": "Logged out"})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if len(req.NewPassword) < 8 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "New password must be at least 8 characters"})
	}

	user := c.Locals("user").(*models.User)
	stored, err := database.GetUserByID(config.GetDB(), user.ID)
	if err != nil {
		return err
	}
	if !CheckPasswordHash(req.CurrentPassword, stored.Password) {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Current password is incorrect"})
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
	}
	if err := database.UpdateUserPassword(config.GetDB(), user.ID, hashed); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "Password updated"})
}
