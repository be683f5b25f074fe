package main

import (
	"log"
	"os"

	"ensemble-backend/internal/api/routes"
	"ensemble-backend/internal/config"
	"ensemble-backend/internal/database"
	"ensemble-backend/internal/metrics"
	"ensemble-backend/internal/repository"
	"ensemble-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "ensemble-backend/docs" // This is needed for swag
)

//	@title			Ensemble Backend API
//	@version		1.0
//	@description	Backend API for the Ensemble team portal: team registration, application inventories, shift turnovers, links and tool settings.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Register Prometheus collectors
	metrics.Init(cfg.MetricsPrefix)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Seed tool settings templates on first start
	toolSettingsService := service.NewToolSettingsService(repository.NewToolSettingsRepository(db), repository.NewTeamRepository(db), validator.New())
	if seeded, err := toolSettingsService.SeedFromFile(cfg.ToolSettingsSeedPath); err != nil {
		logrus.WithError(err).Warn("Tool settings seed failed")
	} else if seeded > 0 {
		logrus.Infof("Seeded %d tool settings templates", seeded)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
