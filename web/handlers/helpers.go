package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// paramID parses the :id route parameter. A non-numeric id can only
// come from a hand-edited URL, so it maps to not-found.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusNotFound, "Page not found.")
	}
	return id, nil
}
