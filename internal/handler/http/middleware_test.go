// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/accounts-service/internal/config"
	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue returns the value of a counter registered in m, or -1.
func counterValue(t *testing.T, m *metrics, name string) float64 {
	t.Helper()

	families, err := m.registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var sum float64
		for _, metric := range mf.GetMetric() {
			sum += metric.GetCounter().GetValue()
		}
		return sum
	}
	return -1
}

// ─────────────────────────────────────────────
// responseWriter
// ─────────────────────────────────────────────

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())
	assert.Equal(t, http.StatusOK, rw.Status())
}

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)
	n, err := rw.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusCreated, rw.Status())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 5, rw.size)
}

func TestResponseWriter_ImplicitHeaderOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	_, _ = rw.Write([]byte("x"))
	assert.True(t, rw.wroteHeader)
	assert.Equal(t, http.StatusOK, rw.status)
}

func TestResponseWriter_ReusesExistingWrapper(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())
	assert.Same(t, rw, newResponseWriter(rw))
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)
	assert.Equal(t, http.ResponseWriter(rec), rw.Unwrap())
}

// ─────────────────────────────────────────────
// withLogging
// ─────────────────────────────────────────────

func TestWithLogging_WritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	h := newTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("abc"))
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts?x=1", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, req)

	out := buf.String()
	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Contains(t, out, `"uri":"/accounts?x=1"`)
	assert.Contains(t, out, `"method":"POST"`)
	assert.Contains(t, out, `"status":202`)
	assert.Contains(t, out, `"size":3`)
}

// ─────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────

func TestCheckHTTPMethod_AllowHeader(t *testing.T) {
	router := chi.NewRouter()
	noop := func(w http.ResponseWriter, r *http.Request) {}
	router.Get("/accounts", noop)
	router.Post("/accounts", noop)
	router.Get(accountPath, noop)
	router.Put(accountPath, noop)
	router.Delete(accountPath, noop)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name      string
		method    string
		target    string
		wantAllow string
	}{
		{name: "collection", method: http.MethodDelete, target: "/accounts", wantAllow: "GET, POST"},
		{name: "item", method: http.MethodPost, target: "/accounts/7", wantAllow: "GET, PUT, DELETE"},
		{name: "item patch", method: http.MethodPatch, target: "/accounts/7", wantAllow: "GET, PUT, DELETE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
			assert.Contains(t, rr.Body.String(), tt.method)
		})
	}
}

// ─────────────────────────────────────────────
// withRateLimit
// ─────────────────────────────────────────────

func TestNewLimiter(t *testing.T) {
	assert.Nil(t, newLimiter(config.Server{}))

	l := newLimiter(config.Server{RateLimit: 5})
	require.NotNil(t, l)
	assert.Equal(t, 1, l.Burst())

	l = newLimiter(config.Server{RateLimit: 5, RateBurst: 10})
	require.NotNil(t, l)
	assert.Equal(t, 10, l.Burst())
}

func TestWithRateLimit_DisabledPassesThrough(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	for range 5 {
		rr := httptest.NewRecorder()
		h.withRateLimit(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestWithRateLimit_DeniesWhenExhausted(t *testing.T) {
	h := newTestHandler()
	// one token that refills far slower than the test runs
	h.limiter = newLimiter(config.Server{RateLimit: 0.001, RateBurst: 1})
	mw := h.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	first := httptest.NewRecorder()
	mw.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	mw.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), ErrRateLimited.Error())
	assert.Equal(t, float64(1), counterValue(t, h.metrics, "accounts_rate_limit_denied_total"))
}

// ─────────────────────────────────────────────
// withTimeout
// ─────────────────────────────────────────────

func TestWithTimeout(t *testing.T) {
	tests := []struct {
		name         string
		timeout      time.Duration
		wantDeadline bool
	}{
		{name: "deadline set", timeout: time.Minute, wantDeadline: true},
		{name: "disabled", timeout: 0, wantDeadline: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			h.cfg.RequestTimeout = tt.timeout

			var hasDeadline bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, hasDeadline = r.Context().Deadline()
			})
			h.withTimeout(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantDeadline, hasDeadline)
		})
	}
}

// ─────────────────────────────────────────────
// requireJSON
// ─────────────────────────────────────────────

func TestRequireJSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantStatus  int
	}{
		{name: "plain json", contentType: "application/json", wantStatus: http.StatusOK},
		{name: "json with charset", contentType: "application/json; charset=utf-8", wantStatus: http.StatusOK},
		{name: "mixed case", contentType: "Application/JSON", wantStatus: http.StatusOK},
		{name: "missing", contentType: "", wantStatus: http.StatusUnsupportedMediaType},
		{name: "text", contentType: "text/plain", wantStatus: http.StatusUnsupportedMediaType},
		{name: "form", contentType: "application/x-www-form-urlencoded", wantStatus: http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rr := httptest.NewRecorder()
			requireJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ─────────────────────────────────────────────
// withSecurityHeaders
// ─────────────────────────────────────────────

func TestWithSecurityHeaders(t *testing.T) {
	tests := []struct {
		name         string
		forceHTTPS   bool
		proto        string
		wantStatus   int
		wantLocation string
		wantSTS      bool
	}{
		{name: "http without redirect", proto: "", wantStatus: http.StatusOK},
		{name: "https via proxy header", proto: "https", wantStatus: http.StatusOK, wantSTS: true},
		{name: "http redirected", forceHTTPS: true, wantStatus: http.StatusMovedPermanently, wantLocation: "https://example.com/health"},
		{name: "https not redirected", forceHTTPS: true, proto: "https", wantStatus: http.StatusOK, wantSTS: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Server{ForceHTTPS: tt.forceHTTPS}
			h := &Handler{logger: logger.Nop(), secure: newSecure(cfg), sslRedirect: newSSLRedirect(cfg)}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

			req := httptest.NewRequest(http.MethodGet, "http://example.com/health", nil)
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			rr := httptest.NewRecorder()
			h.withSecurityHeaders(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
			}
			assert.Equal(t, frameOptions, rr.Header().Get("X-Frame-Options"))
			assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, contentSecurityPolicy, rr.Header().Get("Content-Security-Policy"))
			assert.Equal(t, referrerPolicy, rr.Header().Get("Referrer-Policy"))
			if tt.wantSTS {
				assert.Equal(t, "max-age=31536000; includeSubDomains", rr.Header().Get("Strict-Transport-Security"))
			} else {
				assert.Empty(t, rr.Header().Get("Strict-Transport-Security"))
			}
		})
	}
}

// ─────────────────────────────────────────────
// withMetrics
// ─────────────────────────────────────────────

func TestNewSSLRedirect_DisabledByDefault(t *testing.T) {
	assert.Nil(t, newSSLRedirect(config.Server{}))
	assert.NotNil(t, newSSLRedirect(config.Server{ForceHTTPS: true}))
}

func TestRoutePattern_Unmatched(t *testing.T) {
	assert.Equal(t, unmatchedRoute, routePattern(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestWithMetrics_CountsRequests(t *testing.T) {
	h := newTestHandler()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for range 3 {
		h.withMetrics(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/accounts/1", nil))
	}

	assert.Equal(t, float64(3), counterValue(t, h.metrics, "accounts_http_requests_total"))
}
