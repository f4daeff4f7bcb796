package middleware

import (
	"strconv"

	"github.com/buildersupply/database"
	"github.com/gofiber/fiber/v2"
)

// SQLDebug tags each response with the number of statements the
// capture buffer recorded while the request was handled. The
// statements themselves are served by the SQL debug endpoint.
func SQLDebug() fiber.Handler {
	return func(c *fiber.Ctx) error {
		before := len(database.SQLLogger.GetQueries())

		err := c.Next()

		executed := len(database.SQLLogger.GetQueries()) - before
		if executed < 0 {
			executed = 0
		}
		c.Set("X-SQL-Query-Count", strconv.Itoa(executed))

		return err
	}
}
