package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired gates a route behind the admin credential submitted
// with the form. A constant-time compare keeps the check honest even
// though this is an administrative tool, not a hardened auth layer.
func AdminRequired(password string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if password == "" {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Admin access is not configured.")
		}
		submitted := c.FormValue("password")
		if subtle.ConstantTimeCompare([]byte(submitted), []byte(password)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid admin password.")
		}
		return c.Next()
	}
}
