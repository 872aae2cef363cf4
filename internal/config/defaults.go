// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultAppName         = "Account REST API Service"
	defaultAppVersion      = "1.0.0"
	defaultHTTPAddress     = ":8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultCacheTTL        = 5 * time.Minute
	defaultAdapterAddress  = "localhost:8080"
	defaultAdapterTimeout  = 10 * time.Second
)

// applyDefaults fills fields that are still zero after all sources were merged.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Name == "" {
		cfg.App.Name = defaultAppName
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultAppVersion
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Server.RateLimit > 0 && cfg.Server.RateBurst == 0 {
		cfg.Server.RateBurst = int(cfg.Server.RateLimit) + 1
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverMemory
	}
	if cfg.Storage.Cache.Address != "" && cfg.Storage.Cache.TTL == 0 {
		cfg.Storage.Cache.TTL = defaultCacheTTL
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
}
