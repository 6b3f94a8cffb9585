// Package utils holds small helpers shared across the server and the admin
// client: typed context keys, JSON response writing, the resty client wrapper,
// JWT issuing and parsing, and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

// contextKey is a private type for context keys, so values set here never
// collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// AccountIDCtxKey stores the authenticated account id (int64).
	AccountIDCtxKey = contextKey("accountID")
	// TokenCtxKey stores the parsed bearer token (models.Token).
	TokenCtxKey = contextKey("token")
)

// GetAccountIDFromContext returns the authenticated account id and whether it
// was present with the right type.
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// GetTokenFromContext returns the parsed bearer token set by the auth
// middleware.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
