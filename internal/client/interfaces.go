// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive part of the client. *tui.TUI implements it.
type UI interface {
	// LoginFlow blocks until the user logged in or quit.
	LoginFlow(ctx context.Context) (models.Session, error)

	// MainLoop shows the todos of session. logout reports that the user
	// has to log in again.
	MainLoop(ctx context.Context, session models.Session, interval time.Duration) (logout bool, err error)
}
