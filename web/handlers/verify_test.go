package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/buildersupply/web/handlers"
	"github.com/buildersupply/web/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifyApp(password string) *fiber.App {
	app := fiber.New()
	app.Post("/store/verify-password",
		middleware.AdminRequired(password),
		handlers.VerifyRedirect)
	return app
}

func postForm(t *testing.T, app *fiber.App, values url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/store/verify-password",
		strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestVerifyRedirectsOnValidCredential(t *testing.T) {
	app := verifyApp("opensesame")

	resp := postForm(t, app, url.Values{
		"password": {"opensesame"},
		"path":     {"/store/category"},
		"action":   {"create"},
	})

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/store/category/create", resp.Header.Get("Location"))
}

func TestVerifyRejectsBadCredential(t *testing.T) {
	app := verifyApp("opensesame")

	resp := postForm(t, app, url.Values{
		"password": {"guessing"},
		"path":     {"/store/category"},
		"action":   {"create"},
	})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyRejectsMissingCredential(t *testing.T) {
	app := verifyApp("opensesame")

	resp := postForm(t, app, url.Values{
		"path":   {"/store/category"},
		"action": {"create"},
	})

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyRequiresActionAndPath(t *testing.T) {
	app := verifyApp("opensesame")

	resp := postForm(t, app, url.Values{
		"password": {"opensesame"},
		"action":   {"create"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = postForm(t, app, url.Values{
		"password": {"opensesame"},
		"path":     {"/store/category"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestVerifyUnavailableWithoutConfiguredPassword(t *testing.T) {
	app := verifyApp("")

	resp := postForm(t, app, url.Values{
		"password": {"anything"},
		"path":     {"/store/category"},
		"action":   {"create"},
	})

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
