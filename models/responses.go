// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// AppInfo describes the running service and is returned from the index route.
type AppInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	// Status repeats the HTTP status code.
	Status int `json:"status"`

	// Error is the canonical status text (e.g. "Not Found").
	Error string `json:"error"`

	// Message is a human readable description of what went wrong.
	Message string `json:"message"`
}

// FieldError describes a single rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is returned with 400 when request fields fail validation.
type ValidationErrorResponse struct {
	ErrorResponse
	Details []FieldError `json:"details"`
}
