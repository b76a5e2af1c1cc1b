package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the single logged-in session of this device.
type LocalSessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// GetSession returns [ErrLocalSessionNotFound] when nobody is logged in.
	GetSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}

// LocalTodoRepository is the offline copy of the server todo list.
type LocalTodoRepository interface {
	// ReplaceTodos swaps the cached list of ownerID for todos atomically.
	ReplaceTodos(ctx context.Context, ownerID string, todos []models.Todo) error
	ListTodos(ctx context.Context, ownerID string) ([]models.Todo, error)
	// SaveTodo inserts todo or overwrites the cached row with the same id.
	SaveTodo(ctx context.Context, todo models.Todo) error
	DeleteTodo(ctx context.Context, todoID, ownerID string) error
}
