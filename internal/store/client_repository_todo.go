// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// localTodoRepository is the SQLite implementation of [LocalTodoRepository].
type localTodoRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalTodoRepository returns the SQLite [LocalTodoRepository].
func NewLocalTodoRepository(db *DB, logger *logger.Logger) LocalTodoRepository {
	return &localTodoRepository{DB: db, logger: logger}
}

// ReplaceTodos implements [LocalTodoRepository] in one transaction, so a
// reader never observes a half-written list.
func (r *localTodoRepository) ReplaceTodos(ctx context.Context, ownerID string, todos []models.Todo) error {
	log := logger.FromContext(ctx)

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localTodoRepository.ReplaceTodos").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteLocalTodosOfOwner, ownerID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	stmt, err := tx.PrepareContext(ctx, saveLocalTodo)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer stmt.Close()

	for i, todo := range todos {
		if _, err = stmt.ExecContext(ctx, todoArgs(todo)...); err != nil {
			log.Err(err).
				Str("func", "localTodoRepository.ReplaceTodos").
				Int("iteration", i).
				Str("todo_id", todo.ID).
				Msg("failed to cache todo")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (r *localTodoRepository) ListTodos(ctx context.Context, ownerID string) ([]models.Todo, error) {
	rows, err := r.QueryContext(ctx, getLocalTodos, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, 16)
	for rows.Next() {
		todo, scanErr := scanTodo(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		todos = append(todos, todo)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return todos, nil
}

func (r *localTodoRepository) SaveTodo(ctx context.Context, todo models.Todo) error {
	if _, err := r.ExecContext(ctx, saveLocalTodo, todoArgs(todo)...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localTodoRepository) DeleteTodo(ctx context.Context, todoID, ownerID string) error {
	if _, err := r.ExecContext(ctx, deleteLocalTodo, todoID, ownerID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func todoArgs(todo models.Todo) []any {
	return []any{
		todo.ID,
		todo.Title,
		todo.Description,
		todo.Completed,
		todo.CreatedBy,
		todo.CreatedAt.UTC(),
		todo.UpdatedAt.UTC(),
	}
}
