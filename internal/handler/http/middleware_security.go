// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/accounts-service/internal/config"
	"github.com/unrolled/secure"
)

const (
	frameOptions          = "SAMEORIGIN"
	contentSecurityPolicy = "default-src 'self'; object-src 'none'"
	referrerPolicy        = "strict-origin-when-cross-origin"
	stsSeconds            = 31536000
)

var sslProxyHeaders = map[string]string{"X-Forwarded-Proto": "https"}

// newSecure configures the security header middleware. The
// Strict-Transport-Security header is sent on HTTPS requests only.
func newSecure(cfg config.Server) *secure.Secure {
	return secure.New(secure.Options{
		SSLProxyHeaders:         sslProxyHeaders,
		STSSeconds:              stsSeconds,
		STSIncludeSubdomains:    true,
		CustomFrameOptionsValue: frameOptions,
		ContentTypeNosniff:      true,
		ContentSecurityPolicy:   contentSecurityPolicy,
		ReferrerPolicy:          referrerPolicy,
	})
}

// newSSLRedirect returns the 301 plain-HTTP redirect, or nil unless
// cfg.ForceHTTPS is set. It runs after newSecure so redirects carry the
// security headers too.
func newSSLRedirect(cfg config.Server) *secure.Secure {
	if !cfg.ForceHTTPS {
		return nil
	}
	return secure.New(secure.Options{
		SSLRedirect:     true,
		SSLProxyHeaders: sslProxyHeaders,
	})
}

func (h *Handler) withSecurityHeaders(next http.Handler) http.Handler {
	if h.sslRedirect != nil {
		next = h.sslRedirect.Handler(next)
	}
	return h.secure.Handler(next)
}
