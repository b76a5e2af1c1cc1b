// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the server handlers
// and the client adapter.
//
// All Msg* constants are human-readable strings written into the "message"
// or "error" field of a JSON response body. The client matches on them to
// turn a response back into a service error, so the wording is part of the
// wire contract.
package app

const (
	// MsgSuccess is the body message of a successful signup.
	MsgSuccess = "success"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a required field is missing.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgEmailAlreadyInUse is returned by signup for a taken email.
	MsgEmailAlreadyInUse = "Email already in use"

	// MsgUserNotFound is returned by login for an unknown email.
	MsgUserNotFound = "User not found"

	// MsgInvalidCredentials is returned by login for a wrong password.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgNoTokenProvided is returned when a protected route is called
	// without an Authorization header.
	MsgNoTokenProvided = "No token provided"

	// MsgFailedToAuthenticateToken is returned for an expired, tampered or
	// malformed token.
	MsgFailedToAuthenticateToken = "Failed to authenticate token"

	MsgTitleRequired = "Title is required"

	// MsgTodoNotFound is returned when the todo does not exist or belongs
	// to someone else. Both cases look the same.
	MsgTodoNotFound = "Todo not found"

	MsgTodoDeleted = "Todo deleted successfully"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"
)
