package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-todo-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type grpcServer struct {
	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	healthpb.RegisterHealthServer(server, handler)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server Listen: %w", err)
	}

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
