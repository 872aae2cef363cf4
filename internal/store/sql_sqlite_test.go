// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/accounts-service/internal/config"
	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) AccountRepository {
	t.Helper()

	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "accounts.db"),
	}}
	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages.AccountRepository
}

func TestSQLite_CreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.db")

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: path}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSQLite_AccountLifecycle(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)

	created, err := repo.CreateAccount(ctx, testAccount())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "2023-01-01", created.DateJoined.String())

	got, err := repo.GetAccount(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	got.Email = "new@example.com"
	updated, err := repo.UpdateAccount(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)

	require.NoError(t, repo.DeleteAccount(ctx, created.ID))

	_, err = repo.GetAccount(ctx, created.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.ErrorIs(t, repo.DeleteAccount(ctx, created.ID), ErrAccountNotFound)

	_, err = repo.UpdateAccount(ctx, got)
	assert.ErrorIs(t, err, ErrAccountNotFound)

	// AUTOINCREMENT never reuses ids
	next, err := repo.CreateAccount(ctx, testAccount())
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestSQLite_ListOrderedByID(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	for range 3 {
		_, err := repo.CreateAccount(ctx, testAccount())
		require.NoError(t, err)
	}

	accounts, err := repo.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	for i, a := range accounts {
		assert.Equal(t, int64(i+1), a.ID)
	}
}
