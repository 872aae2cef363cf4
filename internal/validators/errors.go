// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every [ValidationErrors] value via [errors.Is].
	ErrValidation = errors.New("validation failed")
)

// FieldError describes why a single field was rejected.
type FieldError struct {
	// Field is the JSON name of the rejected field.
	Field string
	// Tag is the failed rule (e.g. "required").
	Tag string
	// Message is a human readable explanation.
	Message string
}

// ValidationErrors collects every rejected field of one validated value.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e ValidationErrors) Unwrap() error {
	return ErrValidation
}
