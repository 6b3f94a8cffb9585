package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// RevokedTokens is the set of token ids invalidated by Logout.
type RevokedTokens interface {
	Revoke(jti string, expiresAt time.Time)
	IsRevoked(jti string) bool
}

// authService checks credentials against the accounts table and issues
// HS256 tokens. Logged-out tokens stay in revoked until they expire.
type authService struct {
	accounts store.AccountRepository
	revoked  RevokedTokens

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string
	// tokenIssuer is the "iss" claim; tokens from other issuers are rejected.
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAuthService(accounts store.AccountRepository, revoked RevokedTokens, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		accounts:      accounts,
		revoked:       revoked,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login returns the account matching credentials, without its password.
//
// An unknown email and a wrong password both yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Account, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := a.accounts.FindByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Warn().Str("email", credentials.Email).Msg("login for unknown email")
		return models.Account{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(credentials.Password)); err != nil {
		log.Warn().Int64("id", account.ID).Msg("wrong password")
		return models.Account{}, ErrWrongPassword
	}
	account.Password = ""

	return account, nil
}

func (a *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if a.revoked.IsRevoked(token.ID) {
		return models.Token{}, ErrTokenRevoked
	}

	return token, nil
}

func (a *authService) Logout(ctx context.Context, token models.Token) error {
	if token.ID == "" {
		return ErrTokenIsExpiredOrInvalid
	}

	expiresAt := time.Now().Add(a.tokenDuration)
	if token.ExpiresAt != nil {
		expiresAt = token.ExpiresAt.Time
	}

	a.revoked.Revoke(token.ID, expiresAt)
	logger.FromContext(ctx).Info().Int64("account_id", token.AccountID).Msg("token revoked")

	return nil
}
