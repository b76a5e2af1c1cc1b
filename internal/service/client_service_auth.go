package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type clientAuthService struct {
	sessions      store.LocalSessionRepository
	todos         store.LocalTodoRepository
	serverAdapter adapter.ServerAdapter
	validator     validators.Validator

	now func() time.Time

	logger *logger.Logger
}

func NewClientAuthService(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:      storages.SessionRepository,
		todos:         storages.TodoRepository,
		serverAdapter: serverAdapter,
		validator:     validators.NewUserValidator(),
		now:           time.Now,
		logger:        logger,
	}
}

// Register checks the form locally and then creates the account on the
// server.
func (s *clientAuthService) Register(ctx context.Context, user models.User) error {
	if err := s.validator.Validate(ctx, user, validators.SignupFields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.serverAdapter.Register(ctx, user); err != nil {
		s.logger.Err(err).Str("func", "clientAuthService.Register").Msg("register on server failed")
		return mapAdapterError(err)
	}

	return nil
}

// Login authenticates on the server and persists the session. The expiry
// is read from the token itself.
func (s *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	if err := s.validator.Validate(ctx, user, validators.LoginFields...); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	resp, err := s.serverAdapter.Login(ctx, user)
	if err != nil {
		s.logger.Err(err).Str("func", "clientAuthService.Login").Msg("login on server failed")
		return models.Session{}, mapAdapterError(err)
	}

	expiresAt, err := utils.PeekJWTExpiry(resp.Token)
	if err != nil {
		s.logger.Err(err).Str("func", "clientAuthService.Login").Msg("server returned an unreadable token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	session := models.Session{
		UserID:    resp.SanitizedUser.UserID,
		FullName:  resp.SanitizedUser.FullName,
		Email:     resp.SanitizedUser.Email,
		Token:     resp.Token,
		ExpiresAt: expiresAt,
	}

	if err = s.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

func (s *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.Session{}, ErrNoSession
		}
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	if session.Expired(s.now()) {
		s.logger.Info().Str("user_id", session.UserID).Msg("stored session is expired")
		if err = s.sessions.ClearSession(ctx); err != nil {
			return models.Session{}, fmt.Errorf("clear expired session: %w", err)
		}
		return models.Session{}, ErrSessionExpired
	}

	s.serverAdapter.SetToken(session.Token)
	return session, nil
}

// Logout drops the token, the stored session and the cached list of the
// user. Nothing is sent to the server: tokens cannot be revoked.
func (s *clientAuthService) Logout(ctx context.Context) error {
	session, err := s.sessions.GetSession(ctx)
	if err != nil && !errors.Is(err, store.ErrLocalSessionNotFound) {
		return fmt.Errorf("load session: %w", err)
	}

	s.serverAdapter.SetToken("")

	if session.UserID != "" {
		if err = s.todos.ReplaceTodos(ctx, session.UserID, nil); err != nil {
			return fmt.Errorf("clear cached todos: %w", err)
		}
	}

	if err = s.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
