package service

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService keeps the admin client's bearer token in step between the
// server adapter and local session storage.
type ClientAuthService interface {
	// RestoreSession loads a saved token into the adapter. It reports false,
	// without error, when no session was saved.
	RestoreSession(ctx context.Context) (bool, error)

	// Login exchanges credentials for a token, then saves and installs it.
	Login(ctx context.Context, credentials models.Credentials) error

	// Logout revokes the token on the server, then clears local state even
	// if the server call failed. The server error, if any, is returned.
	Logout(ctx context.Context) error

	// AccountID returns the signed-in account id read from the token.
	AccountID() (int64, bool)
}
