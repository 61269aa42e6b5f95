package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a sign-in stays valid.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Claims are the access-token claims. SID names the server-side session row
// the token is bound to, so revoking the session revokes the token.
type Claims struct {
	jwt.RegisteredClaims

	SID   string `json:"sid"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// NewSessionClaims builds claims for a freshly created session.
func NewSessionClaims(userID, sessionID, email, name, issuer string, now, expiresAt time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        NewJTI(),
		},
		SID:   sessionID,
		Email: email,
		Name:  name,
	}
}

// NewJTI returns a random URL-safe token ID.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer is a no-op when expected is empty.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAt checks exp and nbf against now, allowing leeway for clock skew.
func (c *Claims) ValidateAt(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}

// ValidateRequired rejects tokens missing the subject or session.
func (c *Claims) ValidateRequired() error {
	if c.Subject == "" || c.SID == "" {
		return ErrInvalidClaim
	}
	return nil
}
