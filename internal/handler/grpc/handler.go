// Package grpc implements the gRPC transport of the todo server. It serves
// the standard grpc.health.v1.Health service.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name clients may pass to Check besides the empty
// server-wide name.
const ServiceName = "todo-keeper"

// Handler answers health checks from the result of
// [service.HealthService.Check].
type Handler struct {
	healthpb.UnimplementedHealthServer

	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Check reports SERVING while the database is reachable and NOT_SERVING
// otherwise. Unknown service names yield codes.NotFound.
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}

	if err := h.services.HealthService.Check(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Check").Msg("health check failed")
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}

	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}

// List returns the status of every service Check knows about.
func (h *Handler) List(ctx context.Context, _ *healthpb.HealthListRequest) (*healthpb.HealthListResponse, error) {
	resp, err := h.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		return nil, err
	}

	return &healthpb.HealthListResponse{
		Statuses: map[string]*healthpb.HealthCheckResponse{
			"":          resp,
			ServiceName: resp,
		},
	}, nil
}
