package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"shelftrack/internal/adapters/http/middleware"
	"shelftrack/internal/adapters/http/routes"
	"shelftrack/internal/adapters/persistence/models"
	"shelftrack/internal/adapters/persistence/repositories"
	"shelftrack/internal/config"
	"shelftrack/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	_ "shelftrack/docs" // Swagger docs
)

// @title Shelftrack Library API
// @version 1.0
// @description Library management REST API: members, books, issuances, catalog, contacts and reports.

// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description Static API key required on mutating routes.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer closeDatabase(db)

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed category/collection masters
	if err := config.SeedCatalogData(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed catalog data: %v", err)
	}

	// Optional overdue-loan reminder sweep
	if cfg.ReminderEnabled {
		reminderService := services.NewReminderService(repositories.NewIssuanceRepository(db))
		reminderService.Start()
		defer reminderService.Stop()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Shelftrack Library API v1.0",
		ErrorHandler: middleware.ErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}

func closeDatabase(db *gorm.DB) {
	if err := config.CloseDatabase(db); err != nil {
		log.Printf("❌ Error closing database: %v", err)
	}
}
