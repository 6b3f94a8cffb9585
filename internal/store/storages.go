package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

// Storages groups the server repositories over one Postgres pool.
type Storages struct {
	AccountRepository AccountRepository

	db *DB
}

// NewStorages connects to Postgres, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ClientStorages groups the admin client's local repositories.
type ClientStorages struct {
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages opens the SQLite session file and applies its schema.
func NewClientStorages(ctx context.Context, dsn string, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, log),
		db:                db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks that the Postgres pool can reach the server.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrNoConnection
	}
	return s.db.PingContext(ctx)
}
