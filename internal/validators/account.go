// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/accounts-service/models"
	"github.com/go-playground/validator/v10"
)

// JSON names of the validated account fields.
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldAddress     = "address"
	FieldPhoneNumber = "phone_number"
	FieldDateJoined  = "date_joined"
)

// accountFields maps JSON field names to Go struct field names.
var accountFields = map[string]string{
	FieldName:        "Name",
	FieldEmail:       "Email",
	FieldAddress:     "Address",
	FieldPhoneNumber: "PhoneNumber",
	FieldDateJoined:  "DateJoined",
}

// AccountValidator checks [models.Account] values against the `validate`
// struct tags using go-playground/validator.
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator returns a Validator for [models.Account].
func NewAccountValidator() Validator {
	v := validator.New()

	// report JSON names so errors match what the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// a zero date is treated as a missing value
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(models.Date); ok {
			return d.String()
		}
		return nil
	}, models.Date{})

	return &AccountValidator{validate: v}
}

// Validate validates obj, which must be a models.Account or *models.Account.
// When fields are given (JSON names), only those fields are checked.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return v.validateAccount(ctx, value, fields...)
	case *models.Account:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAccount(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateAccount(ctx context.Context, account models.Account, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, account)
	} else {
		structFields := make([]string, 0, len(fields))
		for _, f := range fields {
			name, ok := accountFields[f]
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
			structFields = append(structFields, name)
		}
		err = v.validate.StructPartialCtx(ctx, account, structFields...)
	}

	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("account validation: %w", err)
	}

	result := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: messageFor(fe),
		})
	}

	return result
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}
