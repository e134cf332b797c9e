package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "buffalosolar-idp"

var testSecret = []byte("test-signing-secret")

func signHS256(t *testing.T, claims Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return raw
}

func validClaims() Claims {
	return Claims{
		Email: "lisa@buffalosolar.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "uid-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestHS256Verifier(t *testing.T) {
	t.Parallel()

	v := HS256Verifier{Secret: testSecret, Issuer: testIssuer}

	t.Run("accepts a well-formed token and yields the email", func(t *testing.T) {
		claims, err := v.Verify(signHS256(t, validClaims()))
		require.NoError(t, err)
		require.Equal(t, "lisa@buffalosolar.com", claims.Email)
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("rejects a tampered signature", func(t *testing.T) {
		other := HS256Verifier{Secret: []byte("wrong"), Issuer: testIssuer}
		_, err := other.Verify(signHS256(t, validClaims()))
		require.Error(t, err)
	})

	t.Run("rejects a foreign issuer", func(t *testing.T) {
		c := validClaims()
		c.Issuer = "someone-else"
		_, err := v.Verify(signHS256(t, c))
		require.ErrorIs(t, err, ErrUnexpectedIssuer)
	})

	t.Run("rejects tokens without an email claim", func(t *testing.T) {
		c := validClaims()
		c.Email = ""
		_, err := v.Verify(signHS256(t, c))
		require.ErrorIs(t, err, ErrMissingEmail)
	})

	t.Run("expired tokens fail at parse", func(t *testing.T) {
		c := validClaims()
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		_, err := v.Verify(signHS256(t, c))
		require.Error(t, err)
	})
}

func TestValidateExpiry(t *testing.T) {
	t.Parallel()

	t.Run("missing exp is rejected", func(t *testing.T) {
		require.ErrorIs(t, Claims{}.ValidateExpiry(), ErrTokenExpired)
	})

	t.Run("future exp is accepted", func(t *testing.T) {
		c := Claims{RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}}
		require.NoError(t, c.ValidateExpiry())
	})
}
