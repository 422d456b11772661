package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/darlculus/franciscancatholicschool-sub001/app/config"
)

// RoleBursar is the role required for every ledger and dashboard endpoint.
const RoleBursar = "bursar"

// LoginAPI authenticates the configured bursar account and issues a JWT.
// Failures never reveal whether the email exists.
func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	bursar := config.AppConfig.Bursar
	if !strings.EqualFold(strings.TrimSpace(req.Email), bursar.Email) ||
		!CheckPasswordHash(req.Password, bursar.PasswordHash) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := GenerateJWT("bursar-1", bursar.Email, bursar.FirstName, bursar.LastName, []string{RoleBursar})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	// Set JWT as HTTP-only cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user": fiber.Map{
			"email":      bursar.Email,
			"first_name": bursar.FirstName,
			"last_name":  bursar.LastName,
			"roles":      []string{RoleBursar},
		},
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	// Clear JWT cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out",
	})
}
