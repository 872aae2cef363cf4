// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/accounts-service/internal/config"
	"github.com/MKhiriev/accounts-service/internal/logger"
)

// Storages aggregates the repositories used by the service layer together
// with the resources that must be released on shutdown.
type Storages struct {
	AccountRepository AccountRepository

	closers []io.Closer
}

// NewStorages builds the account repository selected by cfg.DB.Driver.
//
// SQL drivers are connected, pinged and migrated before use. When
// cfg.Cache.Address is set the repository is wrapped with a redis cache.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	storages := &Storages{}

	switch cfg.DB.Driver {
	case config.DriverMemory, "":
		storages.AccountRepository = NewMemoryAccountRepository(log)

	case config.DriverPostgres, config.DriverSQLite:
		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
			db.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		storages.closers = append(storages.closers, db)
		storages.AccountRepository = NewAccountRepository(db, log)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}

	if cfg.Cache.Address != "" {
		client := NewRedisClient(cfg.Cache)
		storages.closers = append(storages.closers, client)
		storages.AccountRepository = NewCachedAccountRepository(storages.AccountRepository, client, cfg.Cache.TTL, log)
	}

	log.Info().
		Str("driver", cfg.DB.Driver).
		Bool("cache", cfg.Cache.Address != "").
		Msg("storages initialized")

	return storages, nil
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.Driver == config.DriverPostgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// Close releases database connections and cache clients.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil

	return errors.Join(errs...)
}
