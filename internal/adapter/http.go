// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/accounts-service/internal/config"
	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/internal/utils"
	"github.com/MKhiriev/accounts-service/models"
	"github.com/go-resty/resty/v2"
)

const accountsPath = "/accounts"

type httpAccountsAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAccountsAdapter constructs the REST implementation of
// [AccountsAdapter]. The base URL is taken from cfg.HTTPAddress; a missing
// scheme defaults to http.
func NewHTTPAccountsAdapter(cfg config.ClientAdapter, logger *logger.Logger) (AccountsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpAccountsAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func accountPath(id int64) string {
	return accountsPath + "/" + strconv.FormatInt(id, 10)
}

func (h *httpAccountsAdapter) Info(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.client.R().SetContext(ctx).SetResult(&info).Get("/")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

func (h *httpAccountsAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&health).Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

// Create returns the Location header as sent by the server.
func (h *httpAccountsAdapter) Create(ctx context.Context, account models.Account) (models.Account, string, error) {
	var created models.Account

	resp, err := h.jsonRequest(ctx, account).SetResult(&created).Post(accountsPath)
	if err != nil {
		return models.Account{}, "", fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, "", err
	}

	h.logger.Debug().Int64("id", created.ID).Msg("account created")
	return created, resp.Header().Get("Location"), nil
}

func (h *httpAccountsAdapter) List(ctx context.Context) ([]models.Account, error) {
	accounts := make([]models.Account, 0)

	resp, err := h.client.R().SetContext(ctx).SetResult(&accounts).Get(accountsPath)
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (h *httpAccountsAdapter) Get(ctx context.Context, id int64) (models.Account, error) {
	var account models.Account

	resp, err := h.client.R().SetContext(ctx).SetResult(&account).Get(accountPath(id))
	if err != nil {
		return models.Account{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

func (h *httpAccountsAdapter) Update(ctx context.Context, id int64, account models.Account) (models.Account, error) {
	var updated models.Account

	resp, err := h.jsonRequest(ctx, account).SetResult(&updated).Put(accountPath(id))
	if err != nil {
		return models.Account{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return updated, nil
}

func (h *httpAccountsAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().SetContext(ctx).Delete(accountPath(id))
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAccountsAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}
