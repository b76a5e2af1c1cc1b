// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoService is the concrete implementation of TodoService backed by a
// TodoRepository. Ownership is enforced by the repository queries; this
// layer assigns identifiers and translates store errors.
type todoService struct {
	todoRepository store.TodoRepository
	idGenerator    IDGenerator

	logger *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, idGenerator IDGenerator, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

// ListTodos returns every todo of ownerID, oldest first.
func (s *todoService) ListTodos(ctx context.Context, ownerID string) ([]models.Todo, error) {
	todos, err := s.todoRepository.ListTodos(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing todos failed")
		return nil, fmt.Errorf("listing todos failed: %w", err)
	}

	return todos, nil
}

// CreateTodo stores a new, not yet completed todo owned by todo.CreatedBy.
// ID and Completed of the argument are ignored.
func (s *todoService) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	todo.ID = s.idGenerator.Generate()
	todo.Completed = false

	created, err := s.todoRepository.CreateTodo(ctx, todo)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("title", todo.Title).Msg("todo creation failed")
		return models.Todo{}, fmt.Errorf("todo creation failed: %w", err)
	}

	return created, nil
}

// UpdateTodo applies the present fields of update. A todo of another owner
// is reported exactly like a missing one.
func (s *todoService) UpdateTodo(ctx context.Context, update models.TodoUpdate) (models.Todo, error) {
	updated, err := s.todoRepository.UpdateTodo(ctx, update)
	if err != nil {
		return models.Todo{}, s.mapStoreError(ctx, err, update.ID, "todo update failed")
	}

	return updated, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, todoID, ownerID string) error {
	if err := s.todoRepository.DeleteTodo(ctx, todoID, ownerID); err != nil {
		return s.mapStoreError(ctx, err, todoID, "todo deletion failed")
	}

	return nil
}

func (s *todoService) mapStoreError(ctx context.Context, err error, todoID, msg string) error {
	log := logger.FromContext(ctx)

	if errors.Is(err, store.ErrTodoNotFound) {
		log.Info().Str("todo_id", todoID).Msg("todo not found")
		return fmt.Errorf("%w: %w", ErrTodoNotFound, err)
	}

	log.Err(err).Str("todo_id", todoID).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
