// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It works against the "accounts" table of either postgres or sqlite; the
// dialect of the wrapped [DB] selects the placeholder format.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions. Reads and updates are
// retried on [Retryable] errors; inserts and deletes run once.
type accountRepository struct {
	db      *DB
	queries accountQueries
	logger  *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating account repository")
	return &accountRepository{
		db:      db,
		queries: newAccountQueries(db.dialect),
		logger:  logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Address,
		&account.PhoneNumber,
		&account.DateJoined,
	)
	return account, err
}

// CreateAccount inserts account and returns the stored row with its new id.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.insert(account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to create query")
		return models.Account{}, err
	}

	created, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.CreateAccount").
			Stringer("classification", r.db.classify(err)).
			Msg("failed to insert account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// ListAccounts returns every account ordered by id. An empty table yields an
// empty, non-nil slice.
func (r *accountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectAll()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("failed to create query")
		return nil, err
	}

	rows, err := withRetry(ctx, r.db, func(ctx context.Context) (*sql.Rows, error) {
		return r.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.ListAccounts").
			Stringer("classification", r.db.classify(err)).
			Msg("failed to execute query for listing accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*accountRepository.ListAccounts").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		accounts = append(accounts, account)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*accountRepository.ListAccounts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return accounts, nil
}

// GetAccount returns the account with the given id or [ErrAccountNotFound].
func (r *accountRepository) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.selectByID(id)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.GetAccount").Msg("failed to create query")
		return models.Account{}, err
	}

	account, err := withRetry(ctx, r.db, func(ctx context.Context) (models.Account, error) {
		return scanAccount(r.db.QueryRowContext(ctx, query, args...))
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.GetAccount").
			Int64("account_id", id).
			Stringer("classification", r.db.classify(err)).
			Msg("failed to get account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

// UpdateAccount replaces every field of the account identified by account.ID.
func (r *accountRepository) UpdateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.update(account)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateAccount").Msg("failed to create query")
		return models.Account{}, err
	}

	updated, err := withRetry(ctx, r.db, func(ctx context.Context) (models.Account, error) {
		return scanAccount(r.db.QueryRowContext(ctx, query, args...))
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.UpdateAccount").
			Int64("account_id", account.ID).
			Stringer("classification", r.db.classify(err)).
			Msg("failed to update account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// DeleteAccount removes the account with the given id. It returns
// [ErrAccountNotFound] when no row was affected.
func (r *accountRepository) DeleteAccount(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.queries.deleteByID(id)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("failed to create query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.DeleteAccount").
			Int64("account_id", id).
			Stringer("classification", r.db.classify(err)).
			Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.DeleteAccount").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
