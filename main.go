package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/buildersupply/assets"
	"github.com/buildersupply/config"
	"github.com/buildersupply/database"
	"github.com/buildersupply/web"
)

func main() {
	var (
		schema = flag.Bool("schema", false, "Create the catalog tables on startup if missing")
		help   = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.Initialize(&cfg.Database); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.CheckConnection(database.DB); err != nil {
		log.Fatalf("Database connection check failed: %v", err)
	}

	if *schema {
		log.Println("Ensuring catalog tables exist...")
		if err := database.EnsureSchema(database.DB); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
	}

	if err := assets.Initialize(&cfg.Cloudinary); err != nil {
		log.Fatalf("Failed to configure asset host: %v", err)
	}
	if assets.Default == nil {
		log.Println("Asset host not configured; image uploads are disabled")
	}

	server := web.NewServer(cfg)
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func showHelp() {
	fmt.Print(`
Building Supply Catalog

Usage:
  go run . [options]

Options:
  -schema   Create the catalog tables on startup if missing
  -help     Show this help message

Environment:
  Requires .env file or environment variables:
  - DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE
  - APP_PORT, APP_ENV, ADMIN_PASSWORD
  - CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET

`)
}
