package service

import (
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestStorages(t *testing.T) *store.Storages {
	ctrl := gomock.NewController(t)
	return &store.Storages{
		UserRepository: mock.NewMockUserRepository(ctrl),
		TodoRepository: mock.NewMockTodoRepository(ctrl),
	}
}

func TestNewServices(t *testing.T) {
	cfg := config.StructuredConfig{App: testAppConfig}
	cfg.App.PasswordHashCost = bcrypt.MinCost

	services, err := NewServices(newTestStorages(t), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.TodoService)
	assert.IsType(t, &TodoValidationService{}, services.TodoService)
	assert.NotNil(t, services.AppInfoService)
	require.NotNil(t, services.HealthService)
	assert.ErrorIs(t, services.HealthService.Check(t.Context()), ErrDatabaseUnavailable)
}

func TestNewServices_Errors(t *testing.T) {
	badCost := config.StructuredConfig{App: testAppConfig}
	badCost.App.PasswordHashCost = bcrypt.MaxCost + 1

	noVersion := config.StructuredConfig{App: testAppConfig}
	noVersion.App.Version = ""

	for name, cfg := range map[string]config.StructuredConfig{"bad cost": badCost, "no version": noVersion} {
		t.Run(name, func(t *testing.T) {
			_, err := NewServices(newTestStorages(t), cfg, logger.Nop())
			assert.Error(t, err)
		})
	}
}
