// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const accountPath = "/accounts/{id:[0-9]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	// security headers go first so every response carries them
	router.Use(h.withSecurityHeaders)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(h.withMetrics)
	router.Use(h.withRateLimit)
	router.Use(h.withTimeout)

	router.Get("/", h.index)
	router.Get("/health", h.health)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Get("/accounts", h.listAccounts)
	router.Get(accountPath, h.getAccount)
	router.Delete(accountPath, h.deleteAccount)

	router.Group(func(r chi.Router) {
		r.Use(requireJSON)
		r.Post("/accounts", h.createAccount)
		r.Put(accountPath, h.updateAccount)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "no route for "+r.Method+" "+r.URL.Path)
}
