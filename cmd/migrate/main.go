package main

// Run database migrations:
//   go run ./cmd/migrate

import (
	"context"
	"os"

	"jobprep-backend/internal/shared/config"
	"jobprep-backend/internal/shared/storage/db"
	"jobprep-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.SetLevel(cfg.LogLevel)
	ctx := context.Background()

	if cfg.DatabaseURL == "" {
		telemetry.Error("migrate.missing_database_url", nil)
		os.Exit(1)
	}

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Error("migrate.connect_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	version, err := db.Version(ctx, sqlDB)
	if err != nil {
		telemetry.Error("migrate.version_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	telemetry.Info("migrate.done", map[string]any{"version": version})
}
