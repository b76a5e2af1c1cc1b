// Package utils provides small helpers shared by the server and the client:
// typed context keys, JSON response writing, the resty HTTP client wrapper,
// JWT signing and verification, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values stored by
// this package never collide with plain string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authentication middleware stores
// the identity of the caller.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under [UserIDCtxKey].
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the caller identity stored by the
// authentication middleware. ok is false when the value is missing, empty or
// of an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
