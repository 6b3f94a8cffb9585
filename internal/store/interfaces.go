// Package store persists accounts for the server (Postgres) and the bearer
// token for the admin client (SQLite).
//
// Repository methods translate driver errors into the sentinels in errors.go;
// callers match them with [errors.Is].
package store

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository is the accounts table. Returned accounts carry the
// password hash in Password only from FindByEmail.
type AccountRepository interface {
	List(ctx context.Context) ([]models.Account, error)
	FindByID(ctx context.Context, id int64) (models.Account, error)
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	// Create inserts account with account.Password holding the hash.
	Create(ctx context.Context, account models.Account) (models.Account, error)
	// Update replaces email and name; the hash is replaced only when
	// account.Password is non-empty.
	Update(ctx context.Context, account models.Account) (models.Account, error)
	Delete(ctx context.Context, id int64) error
}

// SessionRepository keeps the admin client's single bearer token.
type SessionRepository interface {
	SaveToken(ctx context.Context, token string) error
	// LoadToken returns ErrSessionNotFound when no token is stored.
	LoadToken(ctx context.Context) (string, error)
	ClearSession(ctx context.Context) error
}
