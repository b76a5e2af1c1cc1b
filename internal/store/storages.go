package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Storages groups the server repositories and the shared connection.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository

	// DB is exposed for health checks and shutdown.
	DB *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and builds
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		TodoRepository: NewTodoRepository(db, logger),
		DB:             db,
	}, nil
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
