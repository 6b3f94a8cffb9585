package config

import "fmt"

// ServerConfig is the account server's view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
	Cache   Cache
}

// GetServerConfig loads every source and validates the server view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Cache:   cfg.Cache,
	}

	if err := serverCfg.validate(); err != nil {
		return nil, err
	}

	return serverCfg, nil
}
