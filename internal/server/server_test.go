package server

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}

	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.NoError(t, err)
	s := srv.(*server)
	assert.NotNil(t, s.httpServer)
	assert.NotNil(t, s.gRPCServer)
}

func TestNewServer_NothingConfigured(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, ErrNothingToServe)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_TransportFailureStopsServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "not-an-address"}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	select {
	case err = <-runAsync(srv.(*server)):
		assert.Error(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_NoServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), ErrNothingToServe)
}

func runAsync(s *server) <-chan error {
	done := make(chan error, 1)
	go func() { done <- s.run(context.Background()) }()
	return done
}
