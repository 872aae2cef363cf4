// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/models"
)

// memoryAccountRepository keeps accounts in process memory.
// Ids come from a monotonic counter, so a deleted id is never handed out again.
type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]models.Account
	lastID   int64
	logger   *logger.Logger
}

// NewMemoryAccountRepository returns an empty in-memory [AccountRepository].
func NewMemoryAccountRepository(logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating in-memory account repository")
	return &memoryAccountRepository{
		accounts: make(map[int64]models.Account),
		logger:   logger,
	}
}

func (m *memoryAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	account.ID = m.lastID
	m.accounts[account.ID] = account

	logger.FromContext(ctx).Debug().
		Str("func", "*memoryAccountRepository.CreateAccount").
		Int64("account_id", account.ID).
		Msg("account stored")

	return account, nil
}

func (m *memoryAccountRepository) ListAccounts(_ context.Context) ([]models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		result = append(result, account)
	}
	slices.SortFunc(result, func(a, b models.Account) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return result, nil
}

func (m *memoryAccountRepository) GetAccount(_ context.Context, id int64) (models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[id]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}

	return account, nil
}

func (m *memoryAccountRepository) UpdateAccount(_ context.Context, account models.Account) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[account.ID]; !ok {
		return models.Account{}, ErrAccountNotFound
	}
	m.accounts[account.ID] = account

	return account, nil
}

func (m *memoryAccountRepository) DeleteAccount(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[id]; !ok {
		return ErrAccountNotFound
	}
	delete(m.accounts, id)

	return nil
}
