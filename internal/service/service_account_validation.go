package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/validators"
	"github.com/MKhiriev/go-account-keeper/models"
)

// AccountServiceWrapper decorates an AccountService with extra behavior such
// as validation or response caching.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}

// AccountValidationService rejects malformed input before it reaches the
// wrapped service.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) List(ctx context.Context) ([]models.Account, error) {
	return v.inner.List(ctx)
}

func (v *AccountValidationService) Get(ctx context.Context, id int64) (models.Account, error) {
	if id <= 0 {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAccountID)
	}

	return v.inner.Get(ctx, id)
}

func (v *AccountValidationService) Create(ctx context.Context, account models.Account) (models.Account, error) {
	if err := v.validator.Validate(ctx, account); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Create(ctx, account)
}

func (v *AccountValidationService) Update(ctx context.Context, account models.Account) (models.Account, error) {
	if account.ID <= 0 {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAccountID)
	}

	err := v.validator.Validate(ctx, account,
		validators.FieldName, validators.FieldEmail, validators.FieldOptionalPassword)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Update(ctx, account)
}

func (v *AccountValidationService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAccountID)
	}

	return v.inner.Delete(ctx, id)
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}
