// Package db provides the SQLite-backed run history store.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite

	"github.com/demoreel/demoreel/internal/migrations"
)

// InitDB opens the run database at dbPath, creating the file and applying
// the embedded schema migrations as needed. The returned handle is ready for
// a RunStore.
func InitDB(dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	database, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := database.Ping(); err != nil {
		return nil, closeOnError(database, fmt.Errorf("connect to database: %w", err))
	}
	if err := migrations.RunEmbeddedMigrations(database); err != nil {
		return nil, closeOnError(database, fmt.Errorf("run database migrations: %w", err))
	}
	if err := migrations.VerifyAllMigrationsApplied(database); err != nil {
		return nil, closeOnError(database, fmt.Errorf("verify database migrations: %w", err))
	}

	return database, nil
}

// closeOnError closes the half-initialized handle and returns the original
// error; the close failure, if any, is secondary and only logged.
func closeOnError(database *sql.DB, err error) error {
	if closeErr := database.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close database: %v\n", closeErr)
	}
	return err
}
