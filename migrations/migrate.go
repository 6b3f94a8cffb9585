// Package migrations embeds the SQL schema of both databases and applies it
// with goose: Postgres for the account server, SQLite for the admin client's
// session file.
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

var errNilDB = errors.New("db is nil")

// Migrate applies the server schema to a Postgres database opened with the
// pgx driver.
func Migrate(db *sql.DB) error {
	return migrate(db, postgresMigrations, "pgx", "postgres")
}

// MigrateSQLite applies the client session schema.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, sqliteMigrations, "sqlite3", "sqlite")
}

func migrate(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
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
