// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for the transport servers managed
// by this package.
//
// Implementations are expected to block in [Server.RunServer] until a stop
// signal arrives and to release resources in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM or
	// SIGQUIT is received and shutdown has completed.
	RunServer() error

	// Run is RunServer driven by ctx instead of process signals.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
