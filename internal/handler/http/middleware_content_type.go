// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"mime"
	"net/http"
)

// requireJSON rejects requests whose Content-Type is not application/json
// with 415. Parameters such as charset are allowed.
func requireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/json" {
			writeError(w, http.StatusUnsupportedMediaType, ErrUnsupportedMediaType.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}
