package config

import "errors"

// Validation errors returned by GetServerConfig and GetClientConfig.
var (
	// ErrInvalidAppConfigs indicates missing or invalid token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty database or session DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCacheConfigs indicates a non-positive cache TTL.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidAdapterConfigs indicates a missing server address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
