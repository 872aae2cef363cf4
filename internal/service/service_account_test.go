// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/internal/mock"
	"github.com/MKhiriev/accounts-service/internal/store"
	"github.com/MKhiriev/accounts-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleAccount() models.Account {
	return models.Account{
		Name:        "John Doe",
		Email:       "johndoe@example.com",
		Address:     "123 Elm Street",
		PhoneNumber: "555-555-5555",
		DateJoined:  models.NewDate(2023, time.January, 1),
	}
}

func newTestAccountService(t *testing.T) (AccountService, *mock.MockAccountRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	return NewAccountService(repo, logger.Nop()), repo
}

// ─────────────────────────────────────────────
// CreateAccount
// ─────────────────────────────────────────────

func TestAccountService_CreateAccount_ResetsClientID(t *testing.T) {
	svc, repo := newTestAccountService(t)
	ctx := context.Background()

	input := sampleAccount()
	input.ID = 77

	expected := sampleAccount()
	stored := expected
	stored.ID = 1

	repo.EXPECT().CreateAccount(ctx, expected).Return(stored, nil)

	created, err := svc.CreateAccount(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, stored, created)
}

func TestAccountService_CreateAccount_StoreError(t *testing.T) {
	svc, repo := newTestAccountService(t)
	ctx := context.Background()

	repo.EXPECT().CreateAccount(ctx, gomock.Any()).Return(models.Account{}, store.ErrExecutingQuery)

	_, err := svc.CreateAccount(ctx, sampleAccount())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ─────────────────────────────────────────────
// ListAccounts
// ─────────────────────────────────────────────

func TestAccountService_ListAccounts(t *testing.T) {
	svc, repo := newTestAccountService(t)
	ctx := context.Background()

	a := sampleAccount()
	a.ID = 1
	repo.EXPECT().ListAccounts(ctx).Return([]models.Account{a}, nil)

	accounts, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Account{a}, accounts)
}

func TestAccountService_ListAccounts_NilBecomesEmpty(t *testing.T) {
	svc, repo := newTestAccountService(t)
	ctx := context.Background()

	repo.EXPECT().ListAccounts(ctx).Return(nil, nil)

	accounts, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
}

func TestAccountService_ListAccounts_Error(t *testing.T) {
	svc, repo := newTestAccountService(t)
	ctx := context.Background()

	repo.EXPECT().ListAccounts(ctx).Return(nil, store.ErrScanningRows)

	_, err := svc.ListAccounts(ctx)
	assert.ErrorIs(t, err, store.ErrScanningRows)
}

// ─────────────────────────────────────────────
// GetAccount
// ─────────────────────────────────────────────

func TestAccountService_GetAccount(t *testing.T) {
	svc, repo := newTestAccountService(t)
	ctx := context.Background()

	a := sampleAccount()
	a.ID = 4
	repo.EXPECT().GetAccount(ctx, int64(4)).Return(a, nil)

	got, err := svc.GetAccount(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	svc, repo := newTestAccountService(t)
	ctx := context.Background()

	repo.EXPECT().GetAccount(ctx, int64(4)).Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.GetAccount(ctx, 4)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

// ─────────────────────────────────────────────
// UpdateAccount
// ─────────────────────────────────────────────

func TestAccountService_UpdateAccount_PathIDWins(t *testing.T) {
	svc, repo := newTestAccountService(t)
	ctx := context.Background()

	body := sampleAccount()
	body.ID = 999

	expected := sampleAccount()
	expected.ID = 2
	repo.EXPECT().UpdateAccount(ctx, expected).Return(expected, nil)

	updated, err := svc.UpdateAccount(ctx, 2, body)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.ID)
}

func TestAccountService_UpdateAccount_NotFound(t *testing.T) {
	svc, repo := newTestAccountService(t)
	ctx := context.Background()

	repo.EXPECT().UpdateAccount(ctx, gomock.Any()).Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.UpdateAccount(ctx, 2, sampleAccount())
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

// ─────────────────────────────────────────────
// DeleteAccount
// ─────────────────────────────────────────────

func TestAccountService_DeleteAccount(t *testing.T) {
	svc, repo := newTestAccountService(t)
	ctx := context.Background()

	repo.EXPECT().DeleteAccount(ctx, int64(3)).Return(nil)

	assert.NoError(t, svc.DeleteAccount(ctx, 3))
}

func TestAccountService_DeleteAccount_UnknownIDIsNotAnError(t *testing.T) {
	svc, repo := newTestAccountService(t)
	ctx := context.Background()

	repo.EXPECT().DeleteAccount(ctx, int64(3)).Return(store.ErrAccountNotFound)

	assert.NoError(t, svc.DeleteAccount(ctx, 3))
}

func TestAccountService_DeleteAccount_StoreError(t *testing.T) {
	svc, repo := newTestAccountService(t)
	ctx := context.Background()

	boom := errors.New("disk on fire")
	repo.EXPECT().DeleteAccount(ctx, int64(3)).Return(boom)

	assert.ErrorIs(t, svc.DeleteAccount(ctx, 3), boom)
}
