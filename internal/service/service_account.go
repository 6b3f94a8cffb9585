package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// accountService stores accounts with bcrypt-hashed passwords.
type accountService struct {
	accounts store.AccountRepository
	hashCost int

	logger *logger.Logger
}

func NewAccountService(accounts store.AccountRepository, cfg config.App, logger *logger.Logger) AccountService {
	cost := cfg.PasswordHashCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &accountService{
		accounts: accounts,
		hashCost: cost,
		logger:   logger,
	}
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing accounts failed")
		return nil, fmt.Errorf("listing accounts failed: %w", err)
	}

	return accounts, nil
}

func (s *accountService) Get(ctx context.Context, id int64) (models.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("account search failed")
		return models.Account{}, fmt.Errorf("account search failed: %w", err)
	}

	return account, nil
}

func (s *accountService) Create(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := s.hashPassword(&account); err != nil {
		return models.Account{}, err
	}
	account.Base = models.Base{}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		log.Err(err).Str("email", account.Email).Msg("account creation failed")
		return models.Account{}, fmt.Errorf("account creation failed: %w", err)
	}
	created.Password = ""

	log.Info().Int64("id", created.ID).Msg("account created")
	return created, nil
}

func (s *accountService) Update(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	if account.Password != "" {
		if err := s.hashPassword(&account); err != nil {
			return models.Account{}, err
		}
	}

	updated, err := s.accounts.Update(ctx, account)
	if err != nil {
		log.Err(err).Int64("id", account.ID).Msg("account update failed")
		return models.Account{}, fmt.Errorf("account update failed: %w", err)
	}
	updated.Password = ""

	return updated, nil
}

func (s *accountService) Delete(ctx context.Context, id int64) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("account deletion failed")
		return fmt.Errorf("account deletion failed: %w", err)
	}

	return nil
}

// hashPassword replaces the plain-text password with its bcrypt hash.
func (s *accountService) hashPassword(account *models.Account) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), s.hashCost)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	account.Password = string(hash)
	return nil
}
