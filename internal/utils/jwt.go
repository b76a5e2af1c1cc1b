package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrJWTExpired is returned by ValidateAndParseJWTToken when the token
	// was valid but its "exp" claim is in the past.
	ErrJWTExpired = errors.New("jwt is expired")

	// ErrJWTInvalid covers every other verification failure: bad signature,
	// wrong issuer, unexpected algorithm, malformed input, missing subject.
	ErrJWTInvalid = errors.New("jwt is invalid")

	// ErrNoToken is returned by ExtractToken for an empty header.
	ErrNoToken = errors.New("no token provided")
)

const bearerScheme = "Bearer"

// GenerateJWTToken creates an HS256-signed JWT for userID.
//
// Claims: iss = issuer, sub = userID, iat = now, exp = now + tokenDuration.
// All parameters are required.
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       userID,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its identity.
//
// The signature must be HS256 with tokenSignKey, the issuer must equal
// tokenIssuer and "exp" must be present and in the future. Expiry is
// reported as ErrJWTExpired, anything else as ErrJWTInvalid; both wrap the
// underlying jwt error.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrJWTExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrJWTInvalid, err)
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrJWTInvalid)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		UserID:       claims.Subject,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// PeekJWTExpiry reads the "exp" claim of tokenString without verifying the
// signature. The client uses it to know when its cached session runs out;
// it must never be used to authenticate anyone.
func PeekJWTExpiry(tokenString string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrJWTInvalid, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("%w: no exp claim", ErrJWTInvalid)
	}

	return claims.ExpiresAt.Time, nil
}

// ExtractToken returns the token carried by an Authorization header value.
// Both the raw token and the "Bearer <token>" form are accepted. An empty
// header yields ErrNoToken, any other unusable value ErrJWTInvalid.
func ExtractToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	switch {
	case len(parts) == 0:
		return "", ErrNoToken
	case len(parts) == 1 && !strings.EqualFold(parts[0], bearerScheme):
		return parts[0], nil
	case len(parts) == 2 && strings.EqualFold(parts[0], bearerScheme):
		return parts[1], nil
	default:
		return "", ErrJWTInvalid
	}
}
