// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/accounts-service/internal/config"
	"github.com/MKhiriev/accounts-service/internal/handler"
	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/internal/service"
	"github.com/MKhiriev/accounts-service/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()

	storages := &store.Storages{AccountRepository: store.NewMemoryAccountRepository(logger.Nop())}
	services, err := service.NewServices(storages, config.StructuredConfig{
		App: config.App{Name: "accounts", Version: "0.0.1"},
	}, logger.Nop())
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}

	t.Run("nil handlers", func(t *testing.T) {
		_, err := NewServer(nil, cfg, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})

	t.Run("empty address", func(t *testing.T) {
		_, err := NewServer(newTestHandlers(t, cfg), config.Server{}, logger.Nop())
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})

	t.Run("default shutdown timeout", func(t *testing.T) {
		srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
		require.NoError(t, err)
		assert.Equal(t, defaultShutdownTimeout, srv.(*server).shutdownTimeout)
	})

	t.Run("write timeout follows request timeout", func(t *testing.T) {
		withTimeout := cfg
		withTimeout.RequestTimeout = 3 * time.Second
		withTimeout.ShutdownTimeout = time.Second

		srv, err := NewServer(newTestHandlers(t, withTimeout), withTimeout, logger.Nop())
		require.NoError(t, err)

		s := srv.(*server)
		assert.Equal(t, time.Second, s.shutdownTimeout)
		assert.Equal(t, 4*time.Second, s.httpServer.server.WriteTimeout)
		assert.Equal(t, readHeaderTimeout, s.httpServer.server.ReadHeaderTimeout)
	})
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	// the port is already taken
	cfg := config.Server{HTTPAddress: ln.Addr().String()}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.Run(context.Background()), errNoServersToRun)
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestHTTPServer_ServeAndShutdown(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0"}
	hs := newHTTPServer(newTestHandlers(t, cfg).HTTP.Init(), cfg, logger.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- hs.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, hs.Shutdown(ctx))
	assert.NoError(t, <-served)
}
