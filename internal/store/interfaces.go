// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/accounts-service/models"
)

// AccountRepository persists [models.Account] records.
//
// Implementations assign ids on creation and never reuse them. ListAccounts
// returns accounts ordered by id ascending and never returns a nil slice.
// GetAccount, UpdateAccount and DeleteAccount return [ErrAccountNotFound]
// for unknown ids.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	GetAccount(ctx context.Context, id int64) (models.Account, error)
	UpdateAccount(ctx context.Context, account models.Account) (models.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
