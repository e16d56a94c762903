package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"thirdcoast.systems/hydra/internal/application"
	"thirdcoast.systems/hydra/internal/config"
	"thirdcoast.systems/hydra/internal/db"
)

func main() {
	slog.Info("Starting storage migrator")

	startupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conf, err := config.LoadConfig(startupCtx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if conf.DatabaseDSN == "" {
		slog.Error("DATABASE_DSN is required to run migrations")
		os.Exit(1)
	}

	pool, err := application.OpenDBPoolWithRetry(startupCtx, *conf)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	slog.Info("Database pool connection established")

	dbc := db.NewDatabaseConnection(pool)
	if err := dbc.Migrate(startupCtx); err != nil {
		slog.Error("failed to run PostgreSQL migrations", "error", err)
		os.Exit(1)
	}

	slog.Info("Storage migrations completed successfully")
}
