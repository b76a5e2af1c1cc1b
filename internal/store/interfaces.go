package store

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Emails are expected in normalized
// form, see [models.NormalizeEmail].
type UserRepository interface {
	// CreateUser inserts user and returns the stored row. A duplicate email
	// yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TodoRepository persists todos. Every method is scoped to one owner: rows
// of other owners are never read, changed or removed.
type TodoRepository interface {
	// ListTodos returns the owner's todos ordered by creation time.
	ListTodos(ctx context.Context, ownerID string) ([]models.Todo, error)

	// CreateTodo inserts todo and returns the stored row.
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)

	// UpdateTodo applies update to the todo identified by update.ID and
	// owned by update.UserID in a single statement. No match yields
	// [ErrTodoNotFound].
	UpdateTodo(ctx context.Context, update models.TodoUpdate) (models.Todo, error)

	// DeleteTodo removes the todo identified by todoID and owned by
	// ownerID. No match yields [ErrTodoNotFound].
	DeleteTodo(ctx context.Context, todoID, ownerID string) error
}

// Pinger reports database reachability to the health service.
type Pinger interface {
	PingContext(ctx context.Context) error
}
