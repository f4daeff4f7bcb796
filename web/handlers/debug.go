package handlers

import (
	"github.com/buildersupply/database"
	"github.com/gofiber/fiber/v2"
)

// GetSQLLogs returns the captured SQL statements as JSON
func GetSQLLogs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"queries": database.SQLLogger.GetQueries(),
	})
}

// ClearSQLLogs drops the captured SQL statements
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.JSON(fiber.Map{"cleared": true})
}
