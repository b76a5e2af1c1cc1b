// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used by the todo server and its terminal client.
//
// Logger embeds zerolog.Logger, so Debug, Info, Err and friends are
// available directly. Request handlers obtain their request-scoped logger
// through FromRequest or FromContext; the trace-ID middleware stores it there.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientLogFile is the file name the terminal client logs into. The file
// lives next to the client executable because the terminal itself is owned
// by the TUI.
const ClientLogFile = "todo-keeper.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// role label, a timestamp and a "func" field with the calling function.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewClientLogger returns a logger for the terminal client. Output goes to
// ClientLogFile beside the executable, falling back to stderr when the file
// cannot be opened.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stderr

	execPath, err := os.Executable()
	if err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), ClientLogFile)
		if f, openErr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); openErr == nil {
			out = f
		}
	}

	return newLogger(out, role)
}

func newLogger(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched with extra fields
// without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithUserID returns a child logger tagged with the authenticated user.
func (l *Logger) WithUserID(userID string) *Logger {
	return &Logger{l.With().Str("user_id", userID).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. When none is attached,
// zerolog's default context logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
