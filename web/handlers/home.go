package handlers

import (
	"time"

	"github.com/buildersupply/database"
	"github.com/gofiber/fiber/v2"
)

// HomePage renders the dashboard with per-entity counts
func HomePage(c *fiber.Ctx) error {
	db := database.GetDB()

	locationCount, err := database.CountRows(db, "locations")
	if err != nil {
		return err
	}
	categoryCount, err := database.CountRows(db, "categories")
	if err != nil {
		return err
	}
	materialCount, err := database.CountRows(db, "materials")
	if err != nil {
		return err
	}

	return c.Render("index", fiber.Map{
		"PageTitle":     "The Better Choice for Building Supplies",
		"LocationCount": locationCount,
		"CategoryCount": categoryCount,
		"MaterialCount": materialCount,
		"Year":          time.Now().Year(),
	})
}
