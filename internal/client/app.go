package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/bridge"
	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/reactive"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/models"
)

// AccountsPath is the collection path of accounts, relative to the API prefix.
const AccountsPath = "accounts"

type App struct {
	services *service.ClientServices
	ui       UI
	closers  []func() error

	logger *logger.Logger
}

// NewApp wires an App. closers run in order after the UI exits.
func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger, closers ...func() error) *App {
	return &App{
		services: services,
		ui:       ui,
		closers:  closers,
		logger:   logger,
	}
}

// NewAccountsBridge builds the lazily synchronized accounts store over
// collection and wraps it in a bridge. Store errors and changes are logged.
func NewAccountsBridge(collection adapter.CollectionAdapter, cfg config.Adapter, log *logger.Logger) *bridge.Bridge[models.Account] {
	onError, onInfo := reactive.LogSinks[models.Account](log)

	store := reactive.New[models.Account](collection, reactive.Config[models.Account]{
		Path:      AccountsPath,
		APIPrefix: cfg.APIPrefix,
		OnError:   onError,
		OnInfo:    onInfo,
	})

	return bridge.New(store, false)
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) (err error) {
	defer func() {
		for _, closeFn := range a.closers {
			if closeErr := closeFn(); closeErr != nil {
				a.logger.Err(closeErr).Msg("error closing client resources")
			}
		}
	}()

	signedIn, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	a.logger.Info().Bool("signed_in", signedIn).Msg("client started")

	if err = a.ui.Run(ctx, signedIn); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	return nil
}
