package models

import "time"

// Session is the identity the terminal client keeps between runs: who is
// logged in on this device and with which token.
type Session struct {
	UserID    string
	FullName  string
	Email     string
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the session token is past its expiry at now.
// A zero ExpiresAt is treated as expired.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt.IsZero() || !now.Before(s.ExpiresAt)
}
