package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrEmptyTokenSignKey indicates that no token signing secret was
	// provided. The secret has no default and must come from the
	// environment, a flag or the JSON file.
	ErrEmptyTokenSignKey = errors.New("token sign key is not configured")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a zero token duration or an out-of-range bcrypt cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates missing server settings
	// (for example, an empty HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
