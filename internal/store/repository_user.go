package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser implements [UserRepository]. The users.email unique constraint
// is the last line of defence against concurrent signups with one address:
// unique_violation (23505) is reported as [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.QueryRowContext(ctx, createUser, user.UserID, user.FullName, user.Email, user.PasswordHash).
		Scan(&created.UserID, &created.FullName, &created.Email, &created.PasswordHash, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail implements [UserRepository].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, findUserByEmail, email).
			Scan(&found.UserID, &found.FullName, &found.Email, &found.PasswordHash, &found.CreatedAt)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error selecting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
