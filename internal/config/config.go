// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// StructuredConfig is the full configuration tree shared by both binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the server database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the account server.
	Server Server `envPrefix:"SERVER_"`

	// Cache holds the response cache settings of the account server.
	Cache Cache `envPrefix:"CACHE_"`

	// Adapter holds the admin client's view of the remote server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds admin-client-only settings.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path of a JSON config file merged last.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level security and versioning settings.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used for account passwords.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is exposed on GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence settings of the server.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the Postgres connection settings.
type DB struct {
	// DSN is the Postgres connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds inbound transport settings.
type Server struct {
	// HTTPAddress is the REST listen address, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC health listen address, "host:port". Optional.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds the fixed-TTL response cache settings.
type Cache struct {
	// TTL is the lifetime of a cached list or record response.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`

	// Capacity is the maximum number of cached responses.
	// Env: CACHE_CAPACITY
	Capacity uint64 `env:"CAPACITY"`
}

// Adapter holds the admin client's remote endpoint settings.
type Adapter struct {
	// HTTPAddress is the server base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// APIPrefix is the API root prepended to collection paths.
	// Env: ADAPTER_API_PREFIX
	APIPrefix string `env:"API_PREFIX"`
}

// Client holds admin-client-only settings.
type Client struct {
	// SessionDSN is the SQLite file holding the bearer token.
	// Env: CLIENT_SESSION_DSN
	SessionDSN string `env:"SESSION_DSN"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-account-keeper",
			TokenDuration:    24 * time.Hour,
			PasswordHashCost: 10,
			Version:          "dev",
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Cache: Cache{
			TTL:      time.Hour,
			Capacity: 10_000,
		},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
			APIPrefix:      "api",
		},
		Client: Client{
			SessionDSN: "session.db",
		},
	}
}

// GetStructuredConfig loads and merges every source without validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
