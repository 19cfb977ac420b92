package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"campusdrop-api/config"
	"campusdrop-api/database"
	"campusdrop-api/jobs"
	"campusdrop-api/middleware"
	"campusdrop-api/routes"
	"campusdrop-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with starter data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	emailService := services.NewEmailService(cfg)

	// Purge pending friend invites nobody acted on
	cleanupJob := jobs.NewInviteCleanupJob(db, 24*time.Hour)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	// Create router
	router := gin.New()
	router.Use(routes.SetupCORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, emailService)

	// Start server
	log.Printf("Starting CampusDrop API server on port %s", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
