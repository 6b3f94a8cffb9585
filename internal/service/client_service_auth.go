package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/internal/validators"
	"github.com/MKhiriev/go-account-keeper/models"
)

type clientAuthService struct {
	sessions  store.SessionRepository
	adapter   adapter.AuthAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.AuthAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:  sessions,
		adapter:   serverAdapter,
		validator: validators.NewAccountValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (bool, error) {
	token, err := a.sessions.LoadToken(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error loading saved session: %w", err)
	}

	a.adapter.SetToken(token)
	a.logger.Debug().Msg("session restored")

	return true, nil
}

func (a *clientAuthService) Login(ctx context.Context, credentials models.Credentials) error {
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	token, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, MapAdapterError(err))
	}

	if err = a.sessions.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	a.adapter.SetToken(token)

	a.logger.Info().Str("email", credentials.Email).Msg("logged in")
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if a.adapter.Token() == "" {
		return ErrNotLoggedIn
	}

	var serverErr error
	if err := a.adapter.Logout(ctx); err != nil {
		a.logger.Err(err).Msg("server logout failed, clearing local session anyway")
		serverErr = fmt.Errorf("%w: %w", ErrLogoutOnServer, MapAdapterError(err))
	}

	a.adapter.SetToken("")
	if err := a.sessions.ClearSession(ctx); err != nil {
		return errors.Join(serverErr, fmt.Errorf("error clearing session: %w", err))
	}

	return serverErr
}

func (a *clientAuthService) AccountID() (int64, bool) {
	token := a.adapter.Token()
	if token == "" {
		return 0, false
	}

	id, err := utils.ParseAccountIDFromJWT(token)
	if err != nil {
		return 0, false
	}

	return id, true
}
