package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/cache"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/mock"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCachedSvc(t *testing.T) (AccountService, *mock.MockAccountService, *cache.ResponseCache[any]) {
	t.Helper()
	inner := mock.NewMockAccountService(gomock.NewController(t))
	responses := cache.NewResponseCache[any](time.Hour, 100, logger.Nop())

	return NewCachedAccountService(inner, responses), inner, responses
}

func TestCachedAccountService_ListServedFromCache(t *testing.T) {
	svc, inner, _ := newTestCachedSvc(t)
	ctx := context.Background()

	want := []models.Account{{Base: models.Base{ID: 1}}}
	inner.EXPECT().List(ctx).Return(want, nil).Times(1)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, want, first)
	assert.Equal(t, want, second)
}

func TestCachedAccountService_ErrorsAreNotCached(t *testing.T) {
	svc, inner, responses := newTestCachedSvc(t)
	ctx := context.Background()

	inner.EXPECT().Get(ctx, int64(4)).Return(models.Account{}, errors.New("boom"))
	inner.EXPECT().Get(ctx, int64(4)).Return(models.Account{Base: models.Base{ID: 4}}, nil)

	_, err := svc.Get(ctx, 4)
	require.Error(t, err)
	assert.Zero(t, responses.Len())

	got, err := svc.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)

	got, err = svc.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
}

func TestCachedAccountService_WritesInvalidateBothKeys(t *testing.T) {
	ctx := context.Background()
	account := models.Account{Base: models.Base{ID: 2}, Email: "a@x.com", Name: "A"}

	tests := []struct {
		name  string
		setup func(inner *mock.MockAccountService)
		write func(svc AccountService) error
	}{
		{
			name: "update success",
			setup: func(inner *mock.MockAccountService) {
				inner.EXPECT().Update(ctx, account).Return(account, nil)
			},
			write: func(svc AccountService) error { _, err := svc.Update(ctx, account); return err },
		},
		{
			name: "update failure",
			setup: func(inner *mock.MockAccountService) {
				inner.EXPECT().Update(ctx, account).Return(models.Account{}, errors.New("boom"))
			},
			write: func(svc AccountService) error { _, err := svc.Update(ctx, account); return err },
		},
		{
			name: "delete success",
			setup: func(inner *mock.MockAccountService) {
				inner.EXPECT().Delete(ctx, int64(2)).Return(nil)
			},
			write: func(svc AccountService) error { return svc.Delete(ctx, 2) },
		},
		{
			name: "delete failure",
			setup: func(inner *mock.MockAccountService) {
				inner.EXPECT().Delete(ctx, int64(2)).Return(errors.New("boom"))
			},
			write: func(svc AccountService) error { return svc.Delete(ctx, 2) },
		},
		{
			name: "create success",
			setup: func(inner *mock.MockAccountService) {
				inner.EXPECT().Create(ctx, gomock.Any()).Return(account, nil)
			},
			write: func(svc AccountService) error { _, err := svc.Create(ctx, models.Account{}); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, inner, responses := newTestCachedSvc(t)
			responses.Set(cache.ListKey("accounts"), []models.Account{account})
			responses.Set(cache.ItemKey("accounts", 2), account)
			tt.setup(inner)

			_ = tt.write(svc)

			_, ok := responses.Get(cache.ListKey("accounts"))
			assert.False(t, ok, "list entry must be gone")
			_, ok = responses.Get(cache.ItemKey("accounts", 2))
			assert.False(t, ok, "item entry must be gone")
		})
	}
}

func TestCachedAccountService_CreateFailureInvalidatesList(t *testing.T) {
	svc, inner, responses := newTestCachedSvc(t)
	ctx := context.Background()
	responses.Set(cache.ListKey("accounts"), []models.Account{})

	inner.EXPECT().Create(ctx, gomock.Any()).Return(models.Account{}, errors.New("boom"))

	_, err := svc.Create(ctx, models.Account{})

	require.Error(t, err)
	_, ok := responses.Get(cache.ListKey("accounts"))
	assert.False(t, ok)
}
