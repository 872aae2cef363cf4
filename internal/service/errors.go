// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidAccountID is returned for account ids below 1.
	ErrInvalidAccountID = errors.New("invalid account id")

	// ErrVersionIsNotSpecified is returned by [NewAppInfoService] when the
	// application version is empty.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
