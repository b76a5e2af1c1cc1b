// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side credential primitives.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidHashCost is returned by NewPasswordHasher for a cost outside
// the range bcrypt accepts.
var ErrInvalidHashCost = errors.New("invalid password hash cost")

// ErrPasswordTooLong is returned by Hash for plaintext longer than
// [MaxPasswordLength] bytes. It wraps bcrypt.ErrPasswordTooLong.
var ErrPasswordTooLong = fmt.Errorf("password is longer than %d bytes: %w", MaxPasswordLength, bcrypt.ErrPasswordTooLong)

// MaxPasswordLength is the longest plaintext, in bytes, bcrypt can digest.
const MaxPasswordLength = 72

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt [PasswordHasher] using cost. Zero
// selects bcrypt.DefaultCost.
func NewPasswordHasher(cost int) (PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHashCost, cost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash implements [PasswordHasher]. bcrypt embeds a random salt and the cost
// in the digest. Inputs longer than [MaxPasswordLength] bytes yield
// ErrPasswordTooLong.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

// Verify implements [PasswordHasher] with bcrypt's constant-time compare.
// bcrypt truncates long input, so plaintext that Hash would refuse never
// matches.
func (h *bcryptHasher) Verify(plaintext, digest string) bool {
	if len(plaintext) > MaxPasswordLength {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
