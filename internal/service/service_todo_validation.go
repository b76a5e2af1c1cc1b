package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// TodoValidationService runs presence checks before delegating to the
// wrapped TodoService.
type TodoValidationService struct {
	inner     TodoService
	validator validators.Validator
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{
		validator: validators.NewTodoValidator(),
	}
}

func (v *TodoValidationService) ListTodos(ctx context.Context, ownerID string) ([]models.Todo, error) {
	if ownerID == "" {
		return nil, ErrNoUserID
	}

	return v.inner.ListTodos(ctx, ownerID)
}

func (v *TodoValidationService) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	if err := v.validator.Validate(ctx, todo); err != nil {
		return models.Todo{}, mapValidationError(err)
	}

	return v.inner.CreateTodo(ctx, todo)
}

func (v *TodoValidationService) UpdateTodo(ctx context.Context, update models.TodoUpdate) (models.Todo, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Todo{}, mapValidationError(err)
	}

	return v.inner.UpdateTodo(ctx, update)
}

func (v *TodoValidationService) DeleteTodo(ctx context.Context, todoID, ownerID string) error {
	err := v.validator.Validate(ctx, models.TodoUpdate{ID: todoID, UserID: ownerID})
	if err != nil {
		return mapValidationError(err)
	}

	return v.inner.DeleteTodo(ctx, todoID, ownerID)
}

func (v *TodoValidationService) Wrap(inner TodoService) TodoService {
	v.inner = inner
	return v
}

func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrInvalidUserID):
		return fmt.Errorf("%w: %w", ErrNoUserID, err)
	case errors.Is(err, validators.ErrEmptyTitle):
		return fmt.Errorf("%w: %w", ErrTitleRequired, err)
	case errors.Is(err, validators.ErrEmptyTodoID):
		return fmt.Errorf("%w: %w", ErrTodoNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
