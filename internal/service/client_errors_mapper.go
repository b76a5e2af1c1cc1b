// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The server message decides when a status code is shared
// by several outcomes. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := adapter.ServerMessage(err)

	switch {
	case errors.Is(err, adapter.ErrNoToken):
		return fmt.Errorf("%w: %w", ErrNoSession, err)

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgEmailAlreadyInUse:
			return fmt.Errorf("%w: %w", ErrEmailAlreadyInUse, err)
		case app.MsgInvalidCredentials:
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		case app.MsgTitleRequired:
			return fmt.Errorf("%w: %w", ErrTitleRequired, err)
		default:
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUserNotFound {
			return fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		return fmt.Errorf("%w: %w", ErrTodoNotFound, err)

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)

	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrServerFailure, err)
	}

	return err
}
