// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AccountServiceWrapper

import (
	"context"

	"github.com/MKhiriev/accounts-service/models"
)

// AccountService is the business API over account records.
type AccountService interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	GetAccount(ctx context.Context, id int64) (models.Account, error)
	UpdateAccount(ctx context.Context, id int64, account models.Account) (models.Account, error)

	// DeleteAccount removes the account. Deleting an unknown id is not an error.
	DeleteAccount(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// logging or validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService // returns a decorated AccountService applying additional behavior
}
