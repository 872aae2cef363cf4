// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/accounts-service/internal/config"
	"github.com/MKhiriev/accounts-service/internal/logger"
	"golang.org/x/time/rate"
)

// newLimiter returns a token bucket for cfg, or nil when rate limiting is off.
func newLimiter(cfg config.Server) *rate.Limiter {
	if cfg.RateLimit <= 0 {
		return nil
	}
	burst := cfg.RateBurst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
}

// withRateLimit answers 429 when the token bucket is exhausted.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			logger.FromRequest(r).Debug().Str("func", "*Handler.withRateLimit").Msg("rate limit denied")
			h.metrics.rateLimitDenied.Inc()
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, ErrRateLimited.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}
