package service

import (
	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	TodoService    ClientTodoService
	AppInfoService ClientAppInfoService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(storages, serverAdapter, logger),
		TodoService:    NewClientTodoService(storages, serverAdapter, logger),
		AppInfoService: NewClientAppInfoService(serverAdapter),
	}
}
