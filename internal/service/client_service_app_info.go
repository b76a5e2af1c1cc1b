package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
)

type clientAppInfoService struct {
	serverAdapter adapter.ServerAdapter
}

func NewClientAppInfoService(serverAdapter adapter.ServerAdapter) ClientAppInfoService {
	return &clientAppInfoService{serverAdapter: serverAdapter}
}

func (s *clientAppInfoService) GetServerVersion(ctx context.Context) (string, error) {
	version, err := s.serverAdapter.GetServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}

	return version, nil
}
