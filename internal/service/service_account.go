// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/internal/store"
	"github.com/MKhiriev/accounts-service/models"
)

// accountService delegates account operations to an [store.AccountRepository].
// Input is expected to be validated by the wrapping [AccountValidationService].
type accountService struct {
	repository store.AccountRepository

	logger *logger.Logger
}

func NewAccountService(repository store.AccountRepository, logger *logger.Logger) AccountService {
	logger.Debug().Msg("creating account service")
	return &accountService{
		repository: repository,
		logger:     logger,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	// ids are always assigned by the store
	account.ID = 0

	created, err := s.repository.CreateAccount(ctx, account)
	if err != nil {
		log.Err(err).Str("func", "*accountService.CreateAccount").Msg("failed to create account")
		return models.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	log.Info().Str("func", "*accountService.CreateAccount").Int64("account_id", created.ID).Msg("account created")
	return created, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.repository.ListAccounts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.ListAccounts").Msg("failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	return accounts, nil
}

func (s *accountService) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	account, err := s.repository.GetAccount(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*accountService.GetAccount").Int64("account_id", id).Msg("failed to get account")
		}
		return models.Account{}, fmt.Errorf("failed to get account %d: %w", id, err)
	}

	return account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, id int64, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	// the path id wins over any id sent in the body
	account.ID = id

	updated, err := s.repository.UpdateAccount(ctx, account)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			log.Err(err).Str("func", "*accountService.UpdateAccount").Int64("account_id", id).Msg("failed to update account")
		}
		return models.Account{}, fmt.Errorf("failed to update account %d: %w", id, err)
	}

	log.Info().Str("func", "*accountService.UpdateAccount").Int64("account_id", id).Msg("account updated")
	return updated, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	err := s.repository.DeleteAccount(ctx, id)
	if errors.Is(err, store.ErrAccountNotFound) {
		log.Debug().Str("func", "*accountService.DeleteAccount").Int64("account_id", id).Msg("account already absent")
		return nil
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.DeleteAccount").Int64("account_id", id).Msg("failed to delete account")
		return fmt.Errorf("failed to delete account %d: %w", id, err)
	}

	log.Info().Str("func", "*accountService.DeleteAccount").Int64("account_id", id).Msg("account deleted")
	return nil
}
