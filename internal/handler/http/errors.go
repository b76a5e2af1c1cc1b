// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is logged when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoUserIDInContext is logged when a protected handler runs without
	// an identity in the request context. It means the route was registered
	// outside the auth group.
	ErrNoUserIDInContext = errors.New("no user ID in request context")
)
