package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// ClientStorages groups the client-side cache repositories.
type ClientStorages struct {
	SessionRepository LocalSessionRepository
	TodoRepository    LocalTodoRepository

	db *DB
}

// NewClientStorages opens the SQLite cache at cfg.DB.DSN, applies the client
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewLocalSessionRepository(db, logger),
		TodoRepository:    NewLocalTodoRepository(db, logger),
		db:                db,
	}, nil
}

// Close releases the cache file.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
