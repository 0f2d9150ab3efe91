// Package repositories opens the local cache database and wires the
// repositories that live on it.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/tourplanner/internal/client/migrations"
	"github.com/dmitrijs2005/tourplanner/internal/client/repositories/bookmarks"
	"github.com/dmitrijs2005/tourplanner/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tourplanner/internal/client/repositories/tours"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	DB        *sql.DB
	Metadata  metadata.Repository
	Tours     tours.Repository
	Bookmarks bookmarks.Repository
}

// Close closes the underlying database.
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// RunMigrations applies the embedded schema to db. It is idempotent.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite database at dsn, migrates it
// and returns the repositories bound to it.
func Open(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared and serializes
	// writers.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate %s: %w", dsn, err)
	}

	return &Repositories{
		DB:        db,
		Metadata:  metadata.NewSQLiteRepository(db),
		Tours:     tours.NewSQLiteRepository(db),
		Bookmarks: bookmarks.NewSQLiteRepository(db),
	}, nil
}
