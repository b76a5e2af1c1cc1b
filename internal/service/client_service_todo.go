// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type clientTodoService struct {
	todos         store.LocalTodoRepository
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientTodoService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientTodoService {
	return &clientTodoService{
		todos:         storages.TodoRepository,
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *clientTodoService) CachedTodos(ctx context.Context, ownerID string) ([]models.Todo, error) {
	todos, err := s.todos.ListTodos(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("read cached todos: %w", err)
	}

	return todos, nil
}

func (s *clientTodoService) Refresh(ctx context.Context, ownerID string) ([]models.Todo, error) {
	todos, err := s.serverAdapter.ListTodos(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "clientTodoService.Refresh").Msg("fetching todos failed")
		return nil, mapAdapterError(err)
	}

	if err = s.todos.ReplaceTodos(ctx, ownerID, todos); err != nil {
		return nil, fmt.Errorf("replace cached todos: %w", err)
	}

	return todos, nil
}

func (s *clientTodoService) Create(ctx context.Context, ownerID string, req models.CreateTodoRequest) (models.Todo, error) {
	if req.Title == "" {
		return models.Todo{}, ErrTitleRequired
	}

	todo, err := s.serverAdapter.CreateTodo(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "clientTodoService.Create").Msg("creating todo failed")
		return models.Todo{}, mapAdapterError(err)
	}

	if todo.CreatedBy == "" {
		todo.CreatedBy = ownerID
	}
	if err = s.todos.SaveTodo(ctx, todo); err != nil {
		return models.Todo{}, fmt.Errorf("cache created todo: %w", err)
	}

	return todo, nil
}

// Update sends update to the server. When the server no longer knows the
// todo, the cached copy is dropped as well.
func (s *clientTodoService) Update(ctx context.Context, update models.TodoUpdate) (models.Todo, error) {
	todo, err := s.serverAdapter.UpdateTodo(ctx, update)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrTodoNotFound) {
			s.forget(ctx, update.ID, update.UserID)
		}
		return models.Todo{}, err
	}

	if err = s.todos.SaveTodo(ctx, todo); err != nil {
		return models.Todo{}, fmt.Errorf("cache updated todo: %w", err)
	}

	return todo, nil
}

func (s *clientTodoService) ToggleCompleted(ctx context.Context, todo models.Todo) (models.Todo, error) {
	completed := !todo.Completed

	return s.Update(ctx, models.TodoUpdate{
		ID:        todo.ID,
		UserID:    todo.CreatedBy,
		Completed: &completed,
	})
}

// Delete removes the todo on the server and from the cache. A todo the
// server does not know is still removed locally and reported.
func (s *clientTodoService) Delete(ctx context.Context, todoID, ownerID string) error {
	if err := s.serverAdapter.DeleteTodo(ctx, todoID); err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrTodoNotFound) {
			s.forget(ctx, todoID, ownerID)
		}
		return err
	}

	if err := s.todos.DeleteTodo(ctx, todoID, ownerID); err != nil {
		return fmt.Errorf("remove cached todo: %w", err)
	}

	return nil
}

func (s *clientTodoService) forget(ctx context.Context, todoID, ownerID string) {
	if err := s.todos.DeleteTodo(ctx, todoID, ownerID); err != nil {
		s.logger.Err(err).Str("todo_id", todoID).Msg("removing stale cached todo failed")
	}
}
