// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/accounts-service/internal/validators"
	"github.com/MKhiriev/accounts-service/models"
)

// AccountValidationService rejects invalid input before it reaches the
// wrapped [AccountService].
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	if err := v.validator.Validate(ctx, account); err != nil {
		return models.Account{}, fmt.Errorf("error during account validation before saving: %w", err)
	}

	return v.inner.CreateAccount(ctx, account)
}

func (v *AccountValidationService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return v.inner.ListAccounts(ctx)
}

func (v *AccountValidationService) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	if err := validateID(id); err != nil {
		return models.Account{}, err
	}

	return v.inner.GetAccount(ctx, id)
}

func (v *AccountValidationService) UpdateAccount(ctx context.Context, id int64, account models.Account) (models.Account, error) {
	if err := validateID(id); err != nil {
		return models.Account{}, err
	}
	if err := v.validator.Validate(ctx, account); err != nil {
		return models.Account{}, fmt.Errorf("error during account validation before updating: %w", err)
	}

	return v.inner.UpdateAccount(ctx, id, account)
}

func (v *AccountValidationService) DeleteAccount(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		return err
	}

	return v.inner.DeleteAccount(ctx, id)
}

func (v *AccountValidationService) Wrap(wrapper AccountService) AccountService {
	v.inner = wrapper
	return v
}

func validateID(id int64) error {
	if id < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidAccountID, id)
	}
	return nil
}
