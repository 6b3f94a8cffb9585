// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the admin client's transport to the account server.
//
// [ServerAdapter] combines the generic REST collection contract used by the
// reactive store ([CollectionAdapter]) with the bearer-token session calls
// ([AuthAdapter]). The package ships a single resty implementation,
// [NewHTTPServerAdapter].
//
// Non-2xx responses are mapped by mapHTTPError onto the sentinels in errors.go
// so callers can match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// CollectionAdapter issues REST calls against one collection path, e.g.
// "api/accounts". Bodies are returned raw; decoding is left to the caller,
// which knows the entity type.
type CollectionAdapter interface {
	// List issues GET /{path}.
	List(ctx context.Context, path string) ([]byte, error)

	// Get issues GET /{path}/{id}.
	Get(ctx context.Context, path string, id int64) ([]byte, error)

	// Create issues POST /{path} with payload encoded as JSON.
	Create(ctx context.Context, path string, payload any) ([]byte, error)

	// Update issues PUT /{path}/{id} with payload encoded as JSON.
	Update(ctx context.Context, path string, id int64, payload any) ([]byte, error)

	// Delete issues DELETE /{path}/{id}.
	Delete(ctx context.Context, path string, id int64) error
}

// AuthAdapter manages the bearer token attached to every request.
type AuthAdapter interface {
	// SetToken stores the bearer token used by all subsequent requests.
	SetToken(token string)

	// Token returns the current bearer token, or "" when signed out.
	Token() string

	// Login exchanges credentials for a token. On success the token is also
	// stored via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// Logout revokes the current token on the server. The locally held token
	// is left for the caller to clear.
	Logout(ctx context.Context) error
}

// ServerAdapter is everything the admin client needs from the server.
type ServerAdapter interface {
	CollectionAdapter
	AuthAdapter
}
