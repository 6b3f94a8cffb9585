// Package tui is the admin client's terminal interface.
//
// It renders the account collection mirrored by a bridge and issues every
// change through the bridge's store, so the list on screen is always the
// store's latest snapshot.
package tui

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/internal/bridge"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/service"
	"github.com/MKhiriev/go-account-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	auth      service.ClientAuthService
	accounts  *bridge.Bridge[models.Account]
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, accounts *bridge.Bridge[models.Account], buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		auth:      services.AuthService,
		accounts:  accounts,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits. signedIn skips the login screen when a
// saved session was restored.
func (t *TUI) Run(ctx context.Context, signedIn bool) error {
	model := newAppModel(ctx, t.auth, t.accounts, t.buildInfo, t.logger, signedIn)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(appModel); ok && result.signedIn {
		result.accounts.Unmount()
	}

	return nil
}
