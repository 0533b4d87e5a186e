package db

import (
	"context"
	"database/sql"
	"embed"
	"sync"

	"github.com/pressly/goose/v3"

	"jobprep-backend/internal/shared/telemetry"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrationFiles embed.FS

var (
	gooseOnce sync.Once
	gooseErr  error
)

func initGoose() error {
	gooseOnce.Do(func() {
		goose.SetBaseFS(migrationFiles)
		goose.SetLogger(goose.NopLogger())
		gooseErr = goose.SetDialect("postgres")
	})
	return gooseErr
}

// RunMigrations applies the embedded users, pinned_jobs, resume_analyses and
// interview_history migrations. A nil database is a no-op.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return nil
	}
	if err := initGoose(); err != nil {
		return err
	}
	before, _ := goose.GetDBVersionContext(ctx, database)
	if err := goose.UpContext(ctx, database, migrationsDir); err != nil {
		telemetry.Error("db.migrate_failed", map[string]any{"from_version": before, "error": err.Error()})
		return err
	}
	after, err := Version(ctx, database)
	if err != nil {
		return err
	}
	telemetry.Info("db.migrated", map[string]any{"from_version": before, "version": after})
	return nil
}

// Version reports the last applied migration.
func Version(ctx context.Context, database *sql.DB) (int64, error) {
	if err := initGoose(); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, database)
}
