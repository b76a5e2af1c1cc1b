package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSessionRepository returns the SQLite [LocalSessionRepository].
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{DB: db, logger: logger}
}

func (r *localSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.ExecContext(ctx, saveLocalSession,
		session.UserID,
		session.FullName,
		session.Email,
		session.Token,
		session.ExpiresAt.UTC(),
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localSessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var s models.Session
	err := r.QueryRowContext(ctx, getLocalSession).Scan(&s.UserID, &s.FullName, &s.Email, &s.Token, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrLocalSessionNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.GetSession").Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return s, nil
}

func (r *localSessionRepository) ClearSession(ctx context.Context) error {
	if _, err := r.ExecContext(ctx, clearLocalSession); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
