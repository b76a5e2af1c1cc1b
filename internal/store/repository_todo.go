// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// todoRepository is the PostgreSQL-backed implementation of
// [TodoRepository]. Each method is a single statement filtered by both the
// todo id and created_by, so ownership check and mutation cannot race.
type todoRepository struct {
	*DB
	logger *logger.Logger
}

// NewTodoRepository constructs a [TodoRepository] backed by db.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (models.Todo, error) {
	var todo models.Todo
	err := row.Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Completed,
		&todo.CreatedBy,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	return todo, err
}

// ListTodos implements [TodoRepository]. An owner without todos gets an
// empty, non-nil slice.
func (t *todoRepository) ListTodos(ctx context.Context, ownerID string) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTodosQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.ListTodos").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var todos []models.Todo
	err = t.withRetry(ctx, func(ctx context.Context) error {
		rows, queryErr := t.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		todos = make([]models.Todo, 0, 16)
		for rows.Next() {
			todo, scanErr := scanTodo(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			todos = append(todos, todo)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.ListTodos").
			Str("owner_id", ownerID).
			Msg("failed to list todos")
		return nil, err
	}

	return todos, nil
}

// CreateTodo implements [TodoRepository].
func (t *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	row := t.DB.QueryRowContext(ctx, createTodo, todo.ID, todo.Title, todo.Description, todo.CreatedBy)
	created, err := scanTodo(row)
	if err != nil {
		log.Err(err).
			Str("func", "todoRepository.CreateTodo").
			Str("owner_id", todo.CreatedBy).
			Msg("failed to insert todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// UpdateTodo implements [TodoRepository]. An id that is not a UUID cannot
// exist and is reported as [ErrTodoNotFound] without touching the database.
func (t *todoRepository) UpdateTodo(ctx context.Context, update models.TodoUpdate) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(update.ID) {
		return models.Todo{}, ErrTodoNotFound
	}

	query, args, err := buildUpdateTodoQuery(update)
	if err != nil {
		log.Err(err).Str("func", "todoRepository.UpdateTodo").Msg("failed to build query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanTodo(t.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}
		log.Err(err).
			Str("func", "todoRepository.UpdateTodo").
			Str("todo_id", update.ID).
			Str("owner_id", update.UserID).
			Msg("failed to update todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteTodo implements [TodoRepository].
func (t *todoRepository) DeleteTodo(ctx context.Context, todoID, ownerID string) error {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(todoID) {
		return ErrTodoNotFound
	}

	var deletedID string
	err := t.DB.QueryRowContext(ctx, deleteTodo, todoID, ownerID).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTodoNotFound
		}
		log.Err(err).
			Str("func", "todoRepository.DeleteTodo").
			Str("todo_id", todoID).
			Str("owner_id", ownerID).
			Msg("failed to delete todo")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
