package service

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService is the accounts collection as exposed by the REST endpoint.
// Returned accounts never carry a password.
type AccountService interface {
	List(ctx context.Context) ([]models.Account, error)
	Get(ctx context.Context, id int64) (models.Account, error)
	// Create stores a new account. The server assigns ID and CreatedAt.
	Create(ctx context.Context, account models.Account) (models.Account, error)
	// Update replaces the account identified by account.ID. An empty Password
	// keeps the stored one.
	Update(ctx context.Context, account models.Account) (models.Account, error)
	Delete(ctx context.Context, id int64) error
}

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	// ParseToken rejects expired, forged and revoked tokens.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Logout revokes token until it expires.
	Logout(ctx context.Context, token models.Token) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
