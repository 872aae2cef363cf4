// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "accounts-client"

// HTTPClient wraps [resty.Client]. It embeds *resty.Client so every resty
// method is available directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:8080/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that identifies itself with the
// accounts-client User-Agent.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", userAgent)}
}
