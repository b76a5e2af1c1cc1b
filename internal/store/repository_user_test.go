package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

var userColumns = []string{"id", "full_name", "email", "password_hash", "created_at"}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{
		UserID:       "0190c1a4-2b6f-7c3e-9d11-3a5b7c9e1f20",
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
	}
	now := time.Now()

	rows := sqlmock.NewRows(userColumns).
		AddRow(user.UserID, user.FullName, user.Email, user.PasswordHash, now)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.UserID, user.FullName, user.Email, user.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != user.UserID || created.Email != user.Email {
		t.Errorf("unexpected user returned: %+v", created)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt %v, got %v", now, created.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ada@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ada@example.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("x")) // wrong shape

	if _, err := repo.CreateUser(context.Background(), models.User{}); err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(userColumns).
		AddRow("u1", "Ada", "ada@example.com", "$2a$10$hash", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, full_name, email, password_hash, created_at")).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.PasswordHash != "$2a$10$hash" {
		t.Errorf("expected password hash to be loaded, got %q", found.PasswordHash)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WithArgs("ada@example.com").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByEmail(context.Background(), "ada@example.com")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByEmail_RetriesTransientError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()
	repo.db.errorClassificator = NewPostgresErrorClassifier()

	mock.ExpectQuery("SELECT id").
		WithArgs("ada@example.com").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT id").
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u1", "Ada", "ada@example.com", "h", time.Now()))

	found, err := repo.FindUserByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != "u1" {
		t.Errorf("expected u1, got %q", found.UserID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
