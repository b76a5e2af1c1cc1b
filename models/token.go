package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed identity token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, claim
// inspection). SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted to the client.
//
// UserID is a parsed copy of the "sub" (subject) claim and ExpiresAt a copy
// of the "exp" claim; both are populated on issuance and on successful
// verification.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the identity the token was issued for.
	UserID string `json:"-"`

	// ExpiresAt is the moment after which the token is rejected.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
