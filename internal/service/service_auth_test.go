package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/cache"
	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/mock"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "go-account-keeper",
	TokenDuration: time.Hour,
}

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockAccountRepository, *cache.RevokedTokens) {
	t.Helper()
	repo := mock.NewMockAccountRepository(gomock.NewController(t))
	revoked := cache.NewRevokedTokens()

	return NewAuthService(repo, revoked, testAppConfig, logger.Nop()), repo, revoked
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, _ := newTestAuthSvc(t)

	repo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").
		Return(models.Account{Base: models.Base{ID: 1}, Email: "a@x.com", Password: hashed(t, "secret1")}, nil)

	account, err := svc.Login(context.Background(), models.Credentials{Email: "a@x.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
	assert.Empty(t, account.Password)
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name        string
		credentials models.Credentials
		setup       func(repo *mock.MockAccountRepository)
		wantErr     error
	}{
		{
			name:        "empty password",
			credentials: models.Credentials{Email: "a@x.com"},
			setup:       func(*mock.MockAccountRepository) {},
			wantErr:     ErrInvalidDataProvided,
		},
		{
			name:        "unknown email",
			credentials: models.Credentials{Email: "a@x.com", Password: "secret1"},
			setup: func(repo *mock.MockAccountRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(models.Account{}, store.ErrAccountNotFound)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name:        "wrong password",
			credentials: models.Credentials{Email: "a@x.com", Password: "nope"},
			setup: func(repo *mock.MockAccountRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").
					Return(models.Account{Base: models.Base{ID: 1}, Password: hashed(t, "secret1")}, nil)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name:        "storage failure",
			credentials: models.Credentials{Email: "a@x.com", Password: "secret1"},
			setup: func(repo *mock.MockAccountRepository) {
				repo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(models.Account{}, store.ErrTransient)
			},
			wantErr: store.ErrTransient,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestAuthSvc(t)
			tt.setup(repo)

			_, err := svc.Login(context.Background(), tt.credentials)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Account{Base: models.Base{ID: 42}})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.AccountID)
	assert.Equal(t, token.ID, parsed.ID)
}

func TestAuthService_CreateToken_MissingKey(t *testing.T) {
	svc := NewAuthService(nil, cache.NewRevokedTokens(), config.App{TokenIssuer: "x", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.Account{Base: models.Base{ID: 1}})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	_, err := svc.ParseToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	foreign, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, 1, time.Hour, "other-key")
	require.NoError(t, err)
	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	expired, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, 1, -time.Minute, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), expired.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _, revoked := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Account{Base: models.Base{ID: 7}})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))
	assert.True(t, revoked.IsRevoked(token.ID))

	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestAuthService_Logout_TokenWithoutID(t *testing.T) {
	svc, _, _ := newTestAuthSvc(t)

	assert.ErrorIs(t, svc.Logout(context.Background(), models.Token{}), ErrTokenIsExpiredOrInvalid)
}
