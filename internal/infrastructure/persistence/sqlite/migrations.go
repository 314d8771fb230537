package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/bnema/dockyard/internal/logging"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var embedMigrations embed.FS

// useEmbeddedMigrations points goose at the migrations compiled into the
// binary. goose keeps this as package state.
func useEmbeddedMigrations() error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// RunMigrations brings the layouts schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	if err := useEmbeddedMigrations(); err != nil {
		return err
	}

	// A fresh file has no version table yet.
	before, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		before = 0
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	after, err := SchemaVersion(ctx, db)
	if err != nil {
		return err
	}
	if after != before {
		logging.FromContext(ctx).Info().
			Int64("from_version", before).
			Int64("to_version", after).
			Msg("layout store schema upgraded")
	}
	return nil
}

// SchemaVersion returns the applied migration version of db.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	if err := useEmbeddedMigrations(); err != nil {
		return 0, err
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
