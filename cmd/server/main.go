package main

import (
	"log"

	"github.com/Dhruv9449/Chitros/internal/metrics"
	"github.com/Dhruv9449/Chitros/internal/router"
	"github.com/Dhruv9449/Chitros/pkg/blobstore"
	"github.com/Dhruv9449/Chitros/pkg/config"
	"github.com/Dhruv9449/Chitros/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg.PostgresConnStr)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Initialize media storage
	blobs, err := blobstore.New(cfg.MediaRoot)
	if err != nil {
		log.Fatalf("Failed to initialize media storage: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Validator
	e.Validator = validators.NewValidator()

	// Setup global middleware
	m := metrics.New()
	router.SetupMiddleware(e, m)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, cfg, blobs)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
