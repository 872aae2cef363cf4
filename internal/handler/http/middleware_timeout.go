// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
)

// withTimeout sets a deadline on the request context. Downstream store calls
// observe it through their context. A zero timeout disables the middleware.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	if h.cfg.RequestTimeout <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
