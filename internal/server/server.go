package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/handler"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, ErrNothingToServe
	}

	servers.logger = logger

	return servers, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives or one of the
// transports fails.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

func (s *server) run(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return ErrNothingToServe
	}

	// buffered so a transport that fails after shutdown never blocks
	errs := make(chan error, 2)
	running := 0

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		running++
		go func() { errs <- s.httpServer.RunServer() }()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		running++
		go func() { errs <- s.gRPCServer.RunServer() }()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errs:
		running--
		s.logger.Err(runErr).Msg("transport stopped")
	}

	// finish started servers
	s.Shutdown()
	for ; running > 0; running-- {
		if err := <-errs; err != nil {
			runErr = errors.Join(runErr, err)
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}
