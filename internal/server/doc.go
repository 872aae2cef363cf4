// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, stop-signal handling and graceful
// shutdown of in-flight requests bounded by the configured timeout.
package server
