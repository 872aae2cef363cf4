// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading requests. Callers can match against
// them with [errors.Is].
var (
	// ErrMalformedJSON is returned when the request body is not a valid
	// account JSON document.
	ErrMalformedJSON = errors.New("malformed JSON body")

	// ErrUnsupportedMediaType is returned when a request with a body does not
	// declare "application/json".
	ErrUnsupportedMediaType = errors.New("content type must be application/json")

	// ErrBodyTooLarge is returned when the request body exceeds maxBodyBytes.
	ErrBodyTooLarge = errors.New("request body is too large")

	// ErrRateLimited is returned when the request was rejected by the rate limiter.
	ErrRateLimited = errors.New("too many requests")
)
