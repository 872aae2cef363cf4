// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/accounts-service/models"
	sq "github.com/Masterminds/squirrel"
)

const accountsTable = "accounts"

var accountColumns = []string{"id", "name", "email", "address", "phone_number", "date_joined"}

// accountQueries builds account statements for one SQL dialect.
type accountQueries struct {
	builder sq.StatementBuilderType
}

// newAccountQueries returns builders using $n placeholders for postgres and ? otherwise.
func newAccountQueries(dialect string) accountQueries {
	var format sq.PlaceholderFormat = sq.Question
	if dialect == dialectPostgres {
		format = sq.Dollar
	}
	return accountQueries{builder: sq.StatementBuilder.PlaceholderFormat(format)}
}

func returningAccountColumns() string {
	return "RETURNING id, name, email, address, phone_number, date_joined"
}

func (q accountQueries) insert(account models.Account) (string, []any, error) {
	query, args, err := q.builder.
		Insert(accountsTable).
		Columns("name", "email", "address", "phone_number", "date_joined").
		Values(account.Name, account.Email, account.Address, account.PhoneNumber, account.DateJoined).
		Suffix(returningAccountColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (q accountQueries) selectAll() (string, []any, error) {
	query, args, err := q.builder.
		Select(accountColumns...).
		From(accountsTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (q accountQueries) selectByID(id int64) (string, []any, error) {
	query, args, err := q.builder.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (q accountQueries) update(account models.Account) (string, []any, error) {
	query, args, err := q.builder.
		Update(accountsTable).
		Set("name", account.Name).
		Set("email", account.Email).
		Set("address", account.Address).
		Set("phone_number", account.PhoneNumber).
		Set("date_joined", account.DateJoined).
		Where(sq.Eq{"id": account.ID}).
		Suffix(returningAccountColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (q accountQueries) deleteByID(id int64) (string, []any, error) {
	query, args, err := q.builder.
		Delete(accountsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
