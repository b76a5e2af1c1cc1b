package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for signup, login and
// the session kept on this device.
type ClientAuthService interface {
	// Register creates an account on the server. No session is started;
	// the user logs in afterwards.
	Register(ctx context.Context, user models.User) error

	// Login authenticates against the server and stores the resulting
	// session locally so the next start can skip the login screen.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// RestoreSession loads the stored session. It returns ErrNoSession when
	// nobody is logged in and ErrSessionExpired (after clearing it) when the
	// token ran out.
	RestoreSession(ctx context.Context) (models.Session, error)

	// Logout forgets the stored session and the cached todos.
	Logout(ctx context.Context) error
}

// ClientTodoService defines the client-side contract for todos. Changes go
// to the server first; the local cache only mirrors what the server
// confirmed.
type ClientTodoService interface {
	// CachedTodos returns the last known list without touching the network.
	CachedTodos(ctx context.Context, ownerID string) ([]models.Todo, error)

	// Refresh fetches the list from the server and replaces the cache.
	Refresh(ctx context.Context, ownerID string) ([]models.Todo, error)

	Create(ctx context.Context, ownerID string, req models.CreateTodoRequest) (models.Todo, error)
	Update(ctx context.Context, update models.TodoUpdate) (models.Todo, error)
	ToggleCompleted(ctx context.Context, todo models.Todo) (models.Todo, error)
	Delete(ctx context.Context, todoID, ownerID string) error
}

// ClientAppInfoService reports what the client is talking to.
type ClientAppInfoService interface {
	GetServerVersion(ctx context.Context) (string, error)
}
