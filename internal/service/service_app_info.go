package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// appInfoService answers GET /api/version. The version is fixed at startup
// from APP_VERSION or the linker-provided build version.
type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Msg("serving application version")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
