package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/buildersupply/config"
	"github.com/buildersupply/database"
	"github.com/buildersupply/docstore"
)

func main() {
	var (
		seed = flag.Bool("seed", false, "Seed the document store with the sample catalog and exit")
		help = flag.Bool("help", false, "Show help")
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

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Println("Connecting to document store...")
	client, err := docstore.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		log.Fatalf("Failed to connect to document store: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Warning: failed to close document store connection: %v", err)
		}
	}()

	if *seed {
		fmt.Printf("Seeding document store %s with the sample catalog...\n", cfg.Mongo.DBName)
		if err := docstore.Seed(ctx, client, cfg.Mongo.DBName); err != nil {
			log.Fatalf("Failed to seed document store: %v", err)
		}
		fmt.Println("Seed completed successfully")
		return
	}

	fmt.Println("Reading document store object graph...")
	data, err := docstore.FetchAll(ctx, client, cfg.Mongo.DBName)
	if err != nil {
		log.Fatalf("Failed to read document store: %v", err)
	}
	fmt.Printf("Fetched %d stores, %d categories, %d locations, %d materials\n",
		len(data.Stores), len(data.Categories), len(data.Locations), len(data.Materials))

	fmt.Printf("Connecting to relational store %s@%s:%s/%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	if err := database.InitializeWithOptions(&cfg.Database, true); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	fmt.Println("Running transfer...")
	report, err := database.Transfer(database.DB, data)
	if err != nil {
		log.Fatalf("Transfer failed, relational store left untouched: %v", err)
	}

	fmt.Println("Transfer completed successfully")
	fmt.Printf("  stores:     %d\n", report.Stores)
	fmt.Printf("  categories: %d\n", report.Categories)
	fmt.Printf("  locations:  %d\n", report.Locations)
	fmt.Printf("  materials:  %d\n", report.Materials)
	if report.Skipped > 0 {
		fmt.Printf("  skipped:    %d (see log for details)\n", report.Skipped)
	}
}

func showHelp() {
	fmt.Print(`
Document-store to relational-store migration tool

Usage:
  go run cmd/migrate/main.go [options]

Options:
  -seed     Seed the document store with the sample catalog and exit
  -help     Show this help message

The transfer runs in a single transaction: either the full object
graph lands in the relational store or nothing does. Rows whose owner
cannot be resolved are skipped and logged, not fatal.

Environment:
  Requires .env file or environment variables:
  - MONGO_URI, MONGO_DB
  - DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE

`)
}
