// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the client uses to talk to
// the go-todo-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
// The server's error message is kept in the wrapped error text and is
// available through [ServerMessage].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-todo-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the token that will be attached to all subsequent
	// authenticated requests. It should be called after a successful Login
	// or when a cached session is restored.
	SetToken(token string)

	// Token returns the token currently stored in the adapter, or an empty
	// string if no token has been set yet.
	Token() string

	// Register creates an account. The server does not issue a token on
	// signup; call Login afterwards.
	Register(ctx context.Context, user models.User) error

	// Login verifies the credentials and returns the issued token together
	// with the public view of the user. The token is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	ListTodos(ctx context.Context) ([]models.Todo, error)
	CreateTodo(ctx context.Context, req models.CreateTodoRequest) (models.Todo, error)

	// UpdateTodo sends the present fields of update for the todo update.ID.
	UpdateTodo(ctx context.Context, update models.TodoUpdate) (models.Todo, error)

	DeleteTodo(ctx context.Context, todoID string) error

	// GetServerVersion returns the version reported by GET /api/version.
	GetServerVersion(ctx context.Context) (string, error)
}
