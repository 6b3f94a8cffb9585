package config

import "fmt"

// ClientConfig is the admin client's view of [StructuredConfig].
type ClientConfig struct {
	// Adapter holds the remote server address, timeout and API prefix.
	Adapter Adapter
	// SessionDSN is the SQLite file that keeps the bearer token.
	SessionDSN string
	// Version is printed on startup.
	Version string
}

// GetClientConfig loads every source and validates the client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter:    cfg.Adapter,
		SessionDSN: cfg.Client.SessionDSN,
		Version:    cfg.App.Version,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
