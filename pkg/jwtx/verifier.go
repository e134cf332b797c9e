package jwtx

import (
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks a raw compact JWT and returns its claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// HS256Verifier verifies tokens signed with a shared secret. Used in dev and
// in single-tenant deployments where the identity bridge and this service
// share configuration.
type HS256Verifier struct {
	Secret []byte
	Issuer string // expected iss claim; empty disables the check
}

func (v HS256Verifier) Verify(raw string) (Claims, error) {
	return parse(raw, v.Issuer, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
		}
		return v.Secret, nil
	})
}

// RS256Verifier verifies tokens against the identity provider's published
// RSA public key.
type RS256Verifier struct {
	PublicKey *rsa.PublicKey
	Issuer    string
}

func (v RS256Verifier) Verify(raw string) (Claims, error) {
	return parse(raw, v.Issuer, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
		}
		return v.PublicKey, nil
	})
}

// ParseRSAPublicKey decodes a PEM-encoded RSA public key, as published by
// the identity provider.
func ParseRSAPublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	return jwt.ParseRSAPublicKeyFromPEM(pemBytes)
}

func parse(raw, issuer string, keyFn jwt.Keyfunc) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, keyFn)
	if err != nil {
		return Claims{}, err
	}
	if !token.Valid {
		return Claims{}, jwt.ErrTokenUnverifiable
	}
	if issuer != "" && claims.Issuer != issuer {
		return Claims{}, ErrUnexpectedIssuer
	}
	if claims.Email == "" {
		return Claims{}, ErrMissingEmail
	}
	return claims, nil
}
