// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/accounts-service/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:           ErrBadRequest,
	http.StatusNotFound:             ErrNotFound,
	http.StatusMethodNotAllowed:     ErrMethodNotAllowed,
	http.StatusUnsupportedMediaType: ErrUnsupportedMediaType,
	http.StatusTooManyRequests:      ErrTooManyRequests,
	http.StatusInternalServerError:  ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp.Body())
	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}

	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
}

// errorMessage prefers the message of a JSON error body and falls back to
// the raw body text. Field details of validation errors are appended.
func errorMessage(body []byte) string {
	var verr models.ValidationErrorResponse
	if err := json.Unmarshal(body, &verr); err != nil || verr.Message == "" {
		return strings.TrimSpace(string(body))
	}

	if len(verr.Details) == 0 {
		return verr.Message
	}

	details := make([]string, 0, len(verr.Details))
	for _, d := range verr.Details {
		details = append(details, d.Field+": "+d.Message)
	}
	return verr.Message + " (" + strings.Join(details, "; ") + ")"
}
