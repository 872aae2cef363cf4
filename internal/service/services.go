// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/accounts-service/internal/config"
	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/internal/store"
)

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

// NewServices builds the account service wrapped with input validation and
// the application info service.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	accountService := NewAccountValidationService().Wrap(
		NewAccountService(storages.AccountRepository, logger),
	)

	return &Services{
		AccountService: accountService,
		AppInfoService: appInfoService,
	}, nil
}
