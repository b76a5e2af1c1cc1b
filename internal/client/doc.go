// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the session stored on this device (or runs the login flow)
// and keeps the todo screen open until the user quits. Logging out returns
// to the login flow.
package client
