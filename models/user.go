package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries:
// use [User.Sanitize] before serializing a user to a client.
type User struct {
	// UserID is the unique identifier of the user (UUID v7).
	// It is assigned by the server at signup.
	UserID string `json:"id"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// Email is the unique login identifier of the user.
	// Stored in normalized form, see [NormalizeEmail].
	Email string `json:"email"`

	// Password carries the plaintext password of signup and login requests.
	// It is never persisted and never written back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt digest of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the client-safe projection of [User].
// It carries no credential material.
type PublicUser struct {
	UserID    string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Sanitize returns the public view of u. The receiver is not modified.
func (u User) Sanitize() PublicUser {
	return PublicUser{
		UserID:    u.UserID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Emails are compared case-insensitively: every lookup and insert goes
// through this function.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
