package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_GlobalSettings(t *testing.T) {
	require.NotNil(t, NewLogger("server"))
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_NotNil(t *testing.T) {
	require.NotNil(t, NewClientLogger("client"))
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "inherited-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Info().Msg("child message")
	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

func TestWithUserID(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server").WithUserID("u-1")

	l.Info().Msg("scoped")

	assert.Equal(t, "u-1", decodeEntry(t, &buf)["user_id"])
}

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-value", decodeEntry(t, &buf)["ctx-key"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, &buf)["req-key"])
}
