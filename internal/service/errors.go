package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmailAlreadyInUse   = errors.New("email already in use")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrTodoNotFound  = errors.New("todo not found")
	ErrTitleRequired = errors.New("title is required")
	ErrNoUserID      = errors.New("no user ID was given")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrDatabaseUnavailable   = errors.New("database is unavailable")
)
