// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the accounts REST API.
//
// [AccountsAdapter] decouples callers such as the command-line tool from the
// HTTP transport. Non-2xx responses are mapped to the sentinel errors in
// errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrBadRequest] for 400).
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/accounts-service/models"
)

// AccountsAdapter talks to a running accounts server.
type AccountsAdapter interface {
	// Info fetches the service name and version from GET /.
	Info(ctx context.Context) (models.AppInfo, error)

	// Health calls GET /health.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Create sends POST /accounts and returns the stored account along with
	// the Location header of the response.
	Create(ctx context.Context, account models.Account) (models.Account, string, error)

	// List fetches GET /accounts.
	List(ctx context.Context) ([]models.Account, error)

	// Get fetches GET /accounts/{id}.
	Get(ctx context.Context, id int64) (models.Account, error)

	// Update sends PUT /accounts/{id} with the full replacement record.
	Update(ctx context.Context, id int64, account models.Account) (models.Account, error)

	// Delete sends DELETE /accounts/{id}. Deleting a missing account succeeds.
	Delete(ctx context.Context, id int64) error
}
