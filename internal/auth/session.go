// Package auth verifies session tokens issued by the hosted identity
// provider. Login, refresh and expiry flows are entirely owned by the
// provider; this package only decides whether a presented token represents
// an active session.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSession indicates that no token was presented.
	ErrNoSession = errors.New("no active session")

	// ErrInvalidSession indicates a token that failed verification.
	ErrInvalidSession = errors.New("invalid session token")
)

// Session is the subset of identity-provider claims the admin panel needs.
type Session struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// Verifier checks HS256 session tokens against the provider's shared
// signing secret.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for the given signing secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify parses and validates a session token. Expired, malformed or
// wrongly signed tokens yield ErrInvalidSession; an empty token yields
// ErrNoSession.
func (v *Verifier) Verify(token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidSession
	}

	session := &Session{}
	if sub, err := claims.GetSubject(); err == nil {
		session.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}

	return session, nil
}
