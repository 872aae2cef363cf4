// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/accounts-service/internal/config"
	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/internal/service"
	"github.com/unrolled/secure"
	"golang.org/x/time/rate"
)

type Handler struct {
	services *service.Services

	cfg         config.Server
	secure      *secure.Secure
	sslRedirect *secure.Secure
	limiter     *rate.Limiter
	metrics     *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("force_https", cfg.ForceHTTPS).
		Float64("rate_limit", cfg.RateLimit).
		Dur("request_timeout", cfg.RequestTimeout).
		Msg("http handler created")

	return &Handler{
		services:    services,
		cfg:         cfg,
		secure:      newSecure(cfg),
		sslRedirect: newSSLRedirect(cfg),
		limiter:     newLimiter(cfg),
		metrics:     newMetrics(),
		logger:      logger,
	}
}
