// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/migrations"
	"github.com/sethvargo/go-retry"
)

// SQL dialects understood by [DB].
const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"
)

// Retry policy for statements whose failure is classified as [Retryable].
const (
	retryBaseDelay  = 50 * time.Millisecond
	retryMaxRetries = 2
)

// DB wraps a *sql.DB together with its dialect and error classifier.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	// backoff builds a fresh backoff per call. Nil means exponential
	// backoff from retryBaseDelay, capped at retryMaxRetries.
	backoff func() retry.Backoff
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify reports whether err may succeed on retry. Dialects without a
// classifier report every error as non-retryable.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

func (db *DB) newBackoff() retry.Backoff {
	if db.backoff != nil {
		return db.backoff()
	}
	return retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))
}

// withRetry runs fn and runs it again while its error classifies as
// [Retryable] and the backoff allows. Only idempotent statements go through
// here. The last error is returned unwrapped.
func withRetry[T any](ctx context.Context, db *DB, fn func(ctx context.Context) (T, error)) (T, error) {
	attempt := 0
	return retry.DoValue(ctx, db.newBackoff(), func(ctx context.Context) (T, error) {
		attempt++
		v, err := fn(ctx)
		if err == nil || db.classify(err) != Retryable {
			return v, err
		}
		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")
		return v, retry.RetryableError(err)
	})
}
