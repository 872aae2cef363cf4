// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeJSON = "application/json"

	// written verbatim when data cannot be encoded
	marshalFailureBody = `{"status":500,"error":"Internal Server Error","message":"internal server error"}`
)

// WriteJSON encodes data as JSON and writes it with statusCode and an
// application/json Content-Type. It returns the number of body bytes written.
//
// If data cannot be encoded, a generic 500 JSON error body is sent instead
// and the encoding error is returned wrapped.
//
//	WriteJSON(w, models.HealthResponse{Status: "OK"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentTypeJSON)

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
