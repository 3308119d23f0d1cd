package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/accelhub-dev/accelhub/db"
	"github.com/accelhub-dev/accelhub/internal/auth"
	"github.com/accelhub-dev/accelhub/internal/config"
	"github.com/accelhub-dev/accelhub/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger

	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	defer logger.Sync()

	if err := auth.Init(cfg.JWTSecret); err != nil {
		logger.Fatal("Failed to initialize auth", zap.Error(err))
	}

	database, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.Migrate(database); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	r := router.New(database, cfg, logger)

	logger.Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
