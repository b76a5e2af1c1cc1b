package service

import "errors"

var (
	ErrNoSession      = errors.New("no session, log in first")
	ErrSessionExpired = errors.New("session is expired, log in again")
	ErrServerFailure  = errors.New("server failed to process the request")
)
