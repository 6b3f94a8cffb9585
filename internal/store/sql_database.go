package store

import (
	"database/sql"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/migrations"
)

// DB wraps a database/sql pool with the dialect-specific migration and error
// classification.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Migrate applies the embedded schema for this database's dialect.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return migrations.Migrate(db.DB)
	}
	return db.migrate(db.DB)
}
