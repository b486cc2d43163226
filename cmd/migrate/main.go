package main

import (
	"log"

	"github.com/inmocrm/backend/internal/infrastructure/config"
	"github.com/inmocrm/backend/internal/infrastructure/logging"
	"github.com/inmocrm/backend/internal/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	migrator := postgres.NewMigrator(db, "migrations", logger)
	if err := migrator.Run(); err != nil {
		logger.Error("migrations failed", "error", err)
		log.Fatal(err)
	}

	logger.Info("migrations applied")
}
