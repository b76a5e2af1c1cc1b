package service

import (
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/crypto"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
)

type Services struct {
	AuthService    AuthService
	TodoService    TodoService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.App.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	idGenerator := utils.NewUUIDGenerator()
	todoService := NewTodoValidationService().Wrap(
		NewTodoService(storages.TodoRepository, idGenerator, logger),
	)

	var pinger store.Pinger
	if storages.DB != nil {
		pinger = storages.DB
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, idGenerator, cfg.App, logger),
		TodoService:    todoService,
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(pinger, logger),
	}, nil
}
