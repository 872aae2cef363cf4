// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/internal/service"
	"github.com/MKhiriev/accounts-service/internal/store"
	"github.com/MKhiriev/accounts-service/internal/utils"
	"github.com/MKhiriev/accounts-service/internal/validators"
	"github.com/MKhiriev/accounts-service/models"
)

var errorStatusMap = map[error]int{
	ErrMalformedJSON:        http.StatusBadRequest,
	ErrUnsupportedMediaType: http.StatusUnsupportedMediaType,
	ErrBodyTooLarge:         http.StatusRequestEntityTooLarge,
	ErrRateLimited:          http.StatusTooManyRequests,

	validators.ErrValidation: http.StatusBadRequest,

	// ids below 1 can never exist
	service.ErrInvalidAccountID: http.StatusNotFound,

	store.ErrAccountNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func notFoundMessage(id int64) string {
	return fmt.Sprintf("account with id [%d] could not be found", id)
}

// writeError writes the JSON error body for status.
func writeError(w http.ResponseWriter, status int, message string) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
	}, status)
}

// writeServiceError maps err to a status and writes the matching body.
// Internal errors are logged and never echoed to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, accountID int64) {
	status := statusFromError(err)

	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]models.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			details = append(details, models.FieldError{Field: fe.Field, Message: fe.Message})
		}
		_, _ = utils.WriteJSON(w, models.ValidationErrorResponse{
			ErrorResponse: models.ErrorResponse{
				Status:  status,
				Error:   http.StatusText(status),
				Message: validators.ErrValidation.Error(),
			},
			Details: details,
		}, status)
		return
	}

	switch status {
	case http.StatusNotFound:
		writeError(w, status, notFoundMessage(accountID))
	case http.StatusInternalServerError:
		logger.FromRequest(r).Err(err).Str("func", "writeServiceError").Msg("internal error")
		writeError(w, status, "internal server error")
	default:
		writeError(w, status, err.Error())
	}
}
