// Package jwtx verifies the session tokens minted by the external identity
// provider. The admin service only ever trusts the verified email claim; any
// role or permission claim a token might carry is ignored because
// authorization is decided here, not at the identity provider.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired     = errors.New("jwtx: token expired")
	ErrMissingEmail     = errors.New("jwtx: token carries no email claim")
	ErrUnexpectedIssuer = errors.New("jwtx: unexpected issuer")
)

// Claims are the session-token claims the service consumes.
type Claims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`

	jwt.RegisteredClaims
}

// ValidateExpiry rejects tokens past their exp claim. Tokens without an exp
// are rejected outright; the identity provider always sets one.
func (c Claims) ValidateExpiry() error {
	if c.ExpiresAt == nil || c.ExpiresAt.Before(time.Now()) {
		return ErrTokenExpired
	}
	return nil
}
