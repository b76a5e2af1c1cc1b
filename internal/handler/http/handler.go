package http

import (
	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

// Handler serves the REST API on top of the service layer.
type Handler struct {
	services *service.Services
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
