package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Field names accepted by [TodoValidator].
const (
	// FieldTodoID targets the identifier of an existing todo.
	FieldTodoID = "todo_id"

	// FieldUserID targets the owner taken from the authenticated identity.
	FieldUserID = "user_id"

	// FieldTitle targets the title of a new todo.
	FieldTitle = "title"
)

// TodoValidator checks todos and todo updates before they reach the store.
//
// Default field sets:
//   - models.Todo: FieldUserID, FieldTitle
//   - models.TodoUpdate: FieldTodoID, FieldUserID
//
// An update may leave every field out; it then only bumps the update time.
type TodoValidator struct {
}

func NewTodoValidator() Validator {
	return &TodoValidator{}
}

func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Todo:
		return v.validateTodo(value, fields...)
	case *models.Todo:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTodo(*value, fields...)

	case models.TodoUpdate:
		return v.validateTodoUpdate(value, fields...)
	case *models.TodoUpdate:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateTodoUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TodoValidator) validateTodo(todo models.Todo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTodoID:
			if todo.ID == "" {
				return ErrEmptyTodoID
			}
		case FieldUserID:
			if todo.CreatedBy == "" {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if strings.TrimSpace(todo.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TodoValidator) validateTodoUpdate(update models.TodoUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTodoID, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldTodoID:
			if update.ID == "" {
				return ErrEmptyTodoID
			}
		case FieldUserID:
			if update.UserID == "" {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
