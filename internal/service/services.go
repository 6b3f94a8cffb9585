package service

import (
	"github.com/MKhiriev/go-account-keeper/internal/cache"
	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
	AppInfoService AppInfoService

	// ResponseCache and RevokedTokens are swept by the cache janitor.
	ResponseCache *cache.ResponseCache[any]
	RevokedTokens *cache.RevokedTokens
}

// NewServices builds the account service chain validation -> cache ->
// storage, and the auth service sharing the revoked token set.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	responses := cache.NewResponseCache[any](cfg.Cache.TTL, cfg.Cache.Capacity, logger)
	revoked := cache.NewRevokedTokens()

	accounts := NewAccountService(storages.AccountRepository, cfg.App, logger)
	accounts = NewCachedAccountService(accounts, responses)
	accounts = NewAccountValidationService().Wrap(accounts)

	return &Services{
		AuthService:    NewAuthService(storages.AccountRepository, revoked, cfg.App, logger),
		AccountService: accounts,
		AppInfoService: appInfo,
		ResponseCache:  responses,
		RevokedTokens:  revoked,
	}, nil
}
