// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilDB)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestPostgresMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(postgresMigrations, "postgres/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)

	users, err := fs.ReadFile(postgresMigrations, "postgres/00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(users), "UNIQUE (email)")

	todos, err := fs.ReadFile(postgresMigrations, "postgres/00002_create_todos.sql")
	require.NoError(t, err)
	assert.Contains(t, string(todos), "REFERENCES users (id)")

	for _, f := range files {
		body, err := fs.ReadFile(postgresMigrations, f)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(body), "-- +goose Up"), f)
	}
}

func TestMigrateClient_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateClient(db))
	// second run is a no-op
	require.NoError(t, MigrateClient(db))

	var name string
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='todos'`).Scan(&name))
	assert.Equal(t, "todos", name)
}
