package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestVerifier_Verify(t *testing.T) {
	verifier := NewVerifier(testSecret)
	expiry := time.Now().Add(1 * time.Hour)

	t.Run("Valid token yields session", func(t *testing.T) {
		token := signedToken(t, testSecret, jwt.MapClaims{
			"sub":   "user-123",
			"email": "admin@shopde.example.com",
			"exp":   expiry.Unix(),
		})

		session, err := verifier.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", session.UserID)
		assert.Equal(t, "admin@shopde.example.com", session.Email)
		assert.WithinDuration(t, expiry, session.ExpiresAt, time.Second)
	})

	t.Run("Empty token is no session", func(t *testing.T) {
		_, err := verifier.Verify("")
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("Expired token is invalid", func(t *testing.T) {
		token := signedToken(t, testSecret, jwt.MapClaims{
			"sub": "user-123",
			"exp": time.Now().Add(-1 * time.Hour).Unix(),
		})

		_, err := verifier.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("Wrong secret is invalid", func(t *testing.T) {
		token := signedToken(t, "other-secret", jwt.MapClaims{
			"sub": "user-123",
			"exp": expiry.Unix(),
		})

		_, err := verifier.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	})

	t.Run("Garbage token is invalid", func(t *testing.T) {
		_, err := verifier.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidSession)
	})
}
