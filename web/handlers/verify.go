package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// VerifyRedirect forwards an authenticated admin to the requested
// action path. The admin credential check runs as middleware before
// this handler.
func VerifyRedirect(c *fiber.Ctx) error {
	action := c.FormValue("action")
	path := c.FormValue("path")

	if action == "" || path == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid action or path.")
	}

	log.Printf("Admin verified, redirecting to %s/%s", path, action)
	return c.Redirect(path + "/" + action)
}
