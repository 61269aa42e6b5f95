package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const MinSecretLength = 32

// HS256 signs and verifies session tokens with a shared secret.
type HS256 struct {
	secret []byte
	issuer string
	leeway time.Duration
	now    func() time.Time
}

type HS256Option func(*HS256)

// WithLeeway tolerates clock skew on exp and nbf.
func WithLeeway(d time.Duration) HS256Option {
	return func(h *HS256) { h.leeway = d }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) HS256Option {
	return func(h *HS256) { h.now = now }
}

func NewHS256(secret []byte, issuer string, opts ...HS256Option) (*HS256, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	h := &HS256{
		secret: append([]byte(nil), secret...),
		issuer: issuer,
		leeway: 30 * time.Second,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func (h *HS256) Sign(c Claims) (string, error) {
	if err := c.ValidateRequired(); err != nil {
		return "", err
	}
	if c.Issuer == "" {
		c.Issuer = h.issuer
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return s, nil
}

// Verify checks the signature, issuer, exp/nbf and required claims.
func (h *HS256) Verify(token string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// Time checks run below against the injected clock.
		jwt.WithoutClaimsValidation(),
	)

	var c Claims
	_, err := parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return h.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidSig, err)
	default:
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := c.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if err := c.ValidateAt(h.now(), h.leeway); err != nil {
		return Claims{}, err
	}
	if err := c.ValidateRequired(); err != nil {
		return Claims{}, err
	}
	return c, nil
}
