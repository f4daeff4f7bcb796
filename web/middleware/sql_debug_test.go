package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/buildersupply/database"
	"github.com/buildersupply/web/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqlDebugApp(recordPerRequest int) *fiber.App {
	app := fiber.New()
	app.Use(middleware.SQLDebug())
	app.Get("/report", func(c *fiber.Ctx) error {
		for i := 0; i < recordPerRequest; i++ {
			database.SQLLogger.Record("SELECT 1", time.Millisecond, 1, nil)
		}
		return c.SendString("ok")
	})
	return app
}

func TestSQLDebugCountsStatementsPerRequest(t *testing.T) {
	database.SQLLogger.Clear()
	app := sqlDebugApp(3)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/report", nil))
	require.NoError(t, err)
	assert.Equal(t, "3", resp.Header.Get("X-SQL-Query-Count"))

	// The count covers only the current request, not the buffer total
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/report", nil))
	require.NoError(t, err)
	assert.Equal(t, "3", resp.Header.Get("X-SQL-Query-Count"))
}

func TestSQLDebugZeroWhenNothingExecuted(t *testing.T) {
	database.SQLLogger.Clear()
	app := fiber.New()
	app.Use(middleware.SQLDebug())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "0", resp.Header.Get("X-SQL-Query-Count"))
}
