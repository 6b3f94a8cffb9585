package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

// sessionRepository is the SQLite implementation of [SessionRepository].
// The session table holds at most one row.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) SaveToken(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, saveSessionToken, token); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveToken").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) LoadToken(ctx context.Context) (string, error) {
	var token string

	err := r.db.QueryRowContext(ctx, loadSessionToken).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.LoadToken").Msg("error loading token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if token == "" {
		return "", ErrSessionNotFound
	}

	return token, nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearSession); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.ClearSession").Msg("error clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
