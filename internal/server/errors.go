// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// ErrNothingToServe is returned when no transport got both an address and
// a handler.
var ErrNothingToServe = errors.New("no transport server to run")
