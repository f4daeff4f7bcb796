package web

import (
	"log"
	"time"

	"github.com/buildersupply/config"
	"github.com/buildersupply/web/handlers"
	"github.com/buildersupply/web/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server
func NewServer(cfg *config.Config) *Server {
	engine := html.New("./web/templates", ".html")
	engine.Reload(cfg.App.Environment == "development")

	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("02/01/2006")
	})
	engine.AddFunc("formatDateYMD", func(t time.Time) string {
		return t.Format("2006-01-02")
	})

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)

			message := "Sorry, we have an error. Please try again."
			if code < fiber.StatusInternalServerError {
				// Client-facing errors keep their message; internals stay generic
				message = err.Error()
			}

			return c.Status(code).Render("error", fiber.Map{
				"PageTitle": "Error",
				"Code":      code,
				"Message":   message,
			}, "layouts/main")
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(helmet.New(helmet.Config{
		ContentSecurityPolicy: "default-src 'self'; img-src 'self' data: https://res.cloudinary.com",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))
	app.Use(compress.New())
	app.Use(middleware.SQLDebug())

	// Static files
	app.Static("/static", "./web/static")

	setupRoutes(app, cfg)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Printf("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// App exposes the underlying fiber app, used by tests
func (s *Server) App() *fiber.App {
	return s.app
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, cfg *config.Config) {
	// Dashboard
	app.Get("/", handlers.HomePage)

	// Debug endpoint for SQL logs
	app.Get("/api/debug/sql", handlers.GetSQLLogs)
	app.Delete("/api/debug/sql", handlers.ClearSQLLogs)

	store := app.Group("/store")

	// Admin verification gate
	store.Post("/verify-password",
		middleware.AdminRequired(cfg.App.AdminPassword),
		handlers.VerifyRedirect)

	// Category routes; create/update/delete before ":id"
	store.Get("/category/create", handlers.CategoryCreateForm)
	store.Post("/category/create", handlers.CategoryCreate)
	store.Get("/category/:id/delete", handlers.CategoryDeleteForm)
	store.Post("/category/:id/delete", handlers.CategoryDelete)
	store.Get("/category/:id/update", handlers.CategoryUpdateForm)
	store.Post("/category/:id/update", handlers.CategoryUpdate)
	store.Get("/category/:id", handlers.CategoryDetail)
	store.Get("/category", handlers.CategoryList)

	// Location routes
	store.Get("/location/create", handlers.LocationCreateForm)
	store.Post("/location/create", handlers.LocationCreate)
	store.Get("/location/:id/delete", handlers.LocationDeleteForm)
	store.Post("/location/:id/delete", handlers.LocationDelete)
	store.Get("/location/:id/update", handlers.LocationUpdateForm)
	store.Post("/location/:id/update", handlers.LocationUpdate)
	store.Get("/location/:id", handlers.LocationDetail)
	store.Get("/location", handlers.LocationList)

	// Material routes
	store.Get("/material/create", handlers.MaterialCreateForm)
	store.Post("/material/create", handlers.MaterialCreate)
	store.Get("/material/:id/delete", handlers.MaterialDeleteForm)
	store.Post("/material/:id/delete", handlers.MaterialDelete)
	store.Get("/material/:id/update", handlers.MaterialUpdateForm)
	store.Post("/material/:id/update", handlers.MaterialUpdate)
	store.Get("/material/:id", handlers.MaterialDetail)
	store.Get("/material", handlers.MaterialList)
}
