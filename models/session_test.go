package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      bool
	}{
		{"zero expiry", time.Time{}, true},
		{"in the past", now.Add(-time.Minute), true},
		{"exactly now", now, true},
		{"in the future", now.Add(time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{UserID: "u-1", Token: "t", ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, s.Expired(now))
		})
	}
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "todos", Todo{}.TableName())
	assert.Equal(t, "users", User{}.TableName())
}
