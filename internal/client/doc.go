// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the accounts service.
//
// Each invocation runs a single command (list, get, create, update, delete,
// health or info) against a running server through an
// [adapter.AccountsAdapter] and prints the JSON result.
package client
