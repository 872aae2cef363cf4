// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/MKhiriev/accounts-service/internal/config"
	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/models"
	"github.com/redis/go-redis/v9"
)

const accountCacheKeyPrefix = "account:"

// cachedAccountRepository is a read-through redis cache in front of another
// [AccountRepository]. Only single accounts are cached. Redis failures are
// logged and never fail the request; the wrapped repository stays the source
// of truth.
type cachedAccountRepository struct {
	next   AccountRepository
	client redis.Cmdable
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisClient creates a go-redis client for cfg.
func NewRedisClient(cfg config.Cache) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewCachedAccountRepository wraps next with a redis cache using client.
func NewCachedAccountRepository(next AccountRepository, client redis.Cmdable, ttl time.Duration, logger *logger.Logger) AccountRepository {
	logger.Debug().Dur("ttl", ttl).Msg("creating cached account repository")
	return &cachedAccountRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func accountCacheKey(id int64) string {
	return accountCacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (c *cachedAccountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	created, err := c.next.CreateAccount(ctx, account)
	if err != nil {
		return models.Account{}, err
	}
	c.store(ctx, created)

	return created, nil
}

func (c *cachedAccountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return c.next.ListAccounts(ctx)
}

func (c *cachedAccountRepository) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	raw, err := c.client.Get(ctx, accountCacheKey(id)).Bytes()
	switch {
	case err == nil:
		var account models.Account
		jsonErr := json.Unmarshal(raw, &account)
		if jsonErr == nil {
			log.Debug().Str("func", "*cachedAccountRepository.GetAccount").Int64("account_id", id).Msg("cache hit")
			return account, nil
		}
		log.Warn().Err(jsonErr).Str("func", "*cachedAccountRepository.GetAccount").Msg("dropping undecodable cache entry")
		c.evict(ctx, id)
	case errors.Is(err, redis.Nil):
		// miss
	default:
		log.Warn().Err(err).Str("func", "*cachedAccountRepository.GetAccount").Msg("cache unavailable, reading from store")
	}

	account, err := c.next.GetAccount(ctx, id)
	if err != nil {
		return models.Account{}, err
	}
	c.store(ctx, account)

	return account, nil
}

func (c *cachedAccountRepository) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	updated, err := c.next.UpdateAccount(ctx, account)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			c.evict(ctx, account.ID)
		}
		return models.Account{}, err
	}
	c.store(ctx, updated)

	return updated, nil
}

func (c *cachedAccountRepository) DeleteAccount(ctx context.Context, id int64) error {
	err := c.next.DeleteAccount(ctx, id)
	if err == nil || errors.Is(err, ErrAccountNotFound) {
		c.evict(ctx, id)
	}
	return err
}

func (c *cachedAccountRepository) store(ctx context.Context, account models.Account) {
	raw, err := json.Marshal(account)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*cachedAccountRepository.store").Msg("failed to encode account")
		return
	}
	if err = c.client.Set(ctx, accountCacheKey(account.ID), raw, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*cachedAccountRepository.store").
			Int64("account_id", account.ID).
			Msg("failed to cache account")
	}
}

func (c *cachedAccountRepository) evict(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, accountCacheKey(id)).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*cachedAccountRepository.evict").
			Int64("account_id", id).
			Msg("failed to evict cached account")
	}
}
