package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/SceneIt_Go/migrations"
)

// Migrator applies the embedded goose migrations
type Migrator struct {
	db       *sql.DB
	provider *goose.Provider
}

// NewMigrator creates a migrator backed by the given pool.
// Pass nil for fsys to use the embedded migrations.
func NewMigrator(pool *pgxpool.Pool, fsys fs.FS) (*Migrator, error) {
	if fsys == nil {
		fsys = migrations.FS
	}

	db := stdlib.OpenDBFromPool(pool)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateMigrator, err)
	}

	return &Migrator{db: db, provider: provider}, nil
}

// Up applies all pending migrations
func (m *Migrator) Up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
	}

	if len(results) == 0 {
		slog.Default().Info(LogMsgMigrationsUpToDate)
		return nil
	}

	for _, r := range results {
		slog.Default().Info(LogMsgMigrationApplied,
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration)
	}
	return nil
}

// Down rolls back the most recent migration
func (m *Migrator) Down(ctx context.Context) error {
	if _, err := m.provider.Down(ctx); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// MigrationStatus describes one migration for status output
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

// Status reports which migrations have been applied
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}

// Close releases the sql.DB wrapper. The underlying pool stays open.
func (m *Migrator) Close() error {
	return m.db.Close()
}

// Migrate is a convenience wrapper that applies all pending embedded migrations
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	m, err := NewMigrator(pool, nil)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up(ctx)
}
