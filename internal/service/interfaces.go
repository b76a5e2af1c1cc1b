package service

import (
	"context"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=TodoServiceWrapper

// AuthService registers users, verifies credentials and issues and checks
// identity tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TodoService manages the todos of one owner at a time. The owner always
// comes from the authenticated identity.
type TodoService interface {
	ListTodos(ctx context.Context, ownerID string) ([]models.Todo, error)
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	UpdateTodo(ctx context.Context, update models.TodoUpdate) (models.Todo, error)
	DeleteTodo(ctx context.Context, todoID, ownerID string) error
}

// TodoServiceWrapper defines middleware composition for TodoService.
// Implementations wrap an existing TodoService to add behavior such as
// validation.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the server can serve requests.
type HealthService interface {
	Check(ctx context.Context) error
}

// IDGenerator produces identifiers for new users and todos.
type IDGenerator interface {
	Generate() string
}
