package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Sanitize_DropsCredentials(t *testing.T) {
	users := []User{
		{UserID: "id-1", FullName: "Alice", Email: "alice@example.com", Password: "plain", PasswordHash: "$2a$10$hash"},
		{UserID: "id-2", Email: "bob@example.com", PasswordHash: "x"},
		{},
	}

	for _, u := range users {
		public := u.Sanitize()

		b, err := json.Marshal(public)
		require.NoError(t, err)

		var fields map[string]any
		require.NoError(t, json.Unmarshal(b, &fields))

		assert.NotContains(t, fields, "password")
		assert.NotContains(t, fields, "passwordHash")
		assert.NotContains(t, string(b), "$2a$10$hash")
		assert.Equal(t, u.UserID, public.UserID)
		assert.Equal(t, u.Email, public.Email)
	}
}

func TestUser_Sanitize_DoesNotMutateSource(t *testing.T) {
	u := User{UserID: "id", Email: "a@b.c", Password: "p", PasswordHash: "h", CreatedAt: time.Now()}
	before := u

	_ = u.Sanitize()

	assert.Equal(t, before, u)
}

func TestUser_MarshalNeverWritesHash(t *testing.T) {
	b, err := json.Marshal(User{UserID: "id", PasswordHash: "secret-hash"})
	require.NoError(t, err)

	assert.NotContains(t, string(b), "secret-hash")
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice@example.com", "alice@example.com"},
		{"Alice@Example.COM", "alice@example.com"},
		{"  bob@example.com\t", "bob@example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.in))
		})
	}
}

func TestTodoUpdate_Presence(t *testing.T) {
	empty := ""
	blank := " \t "
	title := "t"

	assert.False(t, TodoUpdate{}.HasTitle())
	assert.False(t, TodoUpdate{Title: &empty}.HasTitle())
	assert.False(t, TodoUpdate{Title: &blank}.HasTitle())
	assert.True(t, TodoUpdate{Title: &title}.HasTitle())
	assert.False(t, TodoUpdate{Description: &empty}.HasDescription())
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
