package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

type healthService struct {
	pinger store.Pinger
	logger *logger.Logger
}

// NewHealthService reports the server healthy while pinger answers. A nil
// pinger is always unhealthy.
func NewHealthService(pinger store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

func (h *healthService) Check(ctx context.Context) error {
	if h.pinger == nil {
		return ErrDatabaseUnavailable
	}

	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Err(err).Str("func", "*healthService.Check").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return nil
}
