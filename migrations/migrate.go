// Package migrations embeds the database schema and applies it with goose.
// The server schema targets PostgreSQL, the client cache schema SQLite.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql
var postgresMigrations embed.FS

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

// ErrNilDB is returned when no connection was given.
var ErrNilDB = errors.New("db is nil")

// Migrate applies the server schema to a PostgreSQL connection opened with
// the pgx driver.
func Migrate(db *sql.DB) error {
	return up(db, postgresMigrations, "pgx", "postgres")
}

// MigrateClient applies the offline cache schema to a SQLite connection.
func MigrateClient(db *sql.DB) error {
	return up(db, sqliteMigrations, "sqlite3", "sqlite")
}

func up(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(fsys)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
