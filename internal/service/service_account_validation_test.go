// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/accounts-service/internal/mock"
	"github.com/MKhiriev/accounts-service/internal/validators"
	"github.com/MKhiriev/accounts-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestValidationService(t *testing.T) (AccountService, *mock.MockAccountService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAccountService(ctrl)
	return NewAccountValidationService().Wrap(inner), inner
}

func TestAccountValidationService_CreateAccount_Valid(t *testing.T) {
	svc, inner := newTestValidationService(t)
	ctx := context.Background()

	a := sampleAccount()
	inner.EXPECT().CreateAccount(ctx, a).Return(a, nil)

	_, err := svc.CreateAccount(ctx, a)
	require.NoError(t, err)
}

func TestAccountValidationService_CreateAccount_MissingFields(t *testing.T) {
	svc, _ := newTestValidationService(t) // inner must not be called
	ctx := context.Background()

	a := sampleAccount()
	a.Email = ""
	a.DateJoined = models.Date{}

	_, err := svc.CreateAccount(ctx, a)
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrValidation)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestAccountValidationService_ListAccounts_PassesThrough(t *testing.T) {
	svc, inner := newTestValidationService(t)
	ctx := context.Background()

	inner.EXPECT().ListAccounts(ctx).Return([]models.Account{}, nil)

	accounts, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccountValidationService_InvalidIDs(t *testing.T) {
	svc, _ := newTestValidationService(t)
	ctx := context.Background()

	for _, id := range []int64{0, -1} {
		_, err := svc.GetAccount(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidAccountID)

		_, err = svc.UpdateAccount(ctx, id, sampleAccount())
		assert.ErrorIs(t, err, ErrInvalidAccountID)

		assert.ErrorIs(t, svc.DeleteAccount(ctx, id), ErrInvalidAccountID)
	}
}

func TestAccountValidationService_UpdateAccount(t *testing.T) {
	svc, inner := newTestValidationService(t)
	ctx := context.Background()

	a := sampleAccount()
	inner.EXPECT().UpdateAccount(ctx, int64(5), a).Return(a, nil)

	_, err := svc.UpdateAccount(ctx, 5, a)
	require.NoError(t, err)

	a.Name = ""
	_, err = svc.UpdateAccount(ctx, 5, a)
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestAccountValidationService_GetAndDelete_Delegate(t *testing.T) {
	svc, inner := newTestValidationService(t)
	ctx := context.Background()

	inner.EXPECT().GetAccount(ctx, int64(1)).Return(sampleAccount(), nil)
	inner.EXPECT().DeleteAccount(ctx, int64(1)).Return(nil)

	_, err := svc.GetAccount(ctx, 1)
	require.NoError(t, err)
	assert.NoError(t, svc.DeleteAccount(ctx, 1))
}
