package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Best-Company-A-S/masterticket/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newSigner(t *testing.T, now time.Time) *jwtx.HS256 {
	t.Helper()
	h, err := jwtx.NewHS256(testSecret, "masterticket", jwtx.WithClock(func() time.Time { return now }), jwtx.WithLeeway(0))
	require.NoError(t, err)
	return h
}

func TestHS256_RoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h := newSigner(t, now)

	claims := jwtx.NewSessionClaims("user-1", "sess-1", "a@example.com", "Alice", "", now, now.Add(time.Hour))
	tok, err := h.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(tok, "."))

	got, err := h.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "sess-1", got.SID)
	require.Equal(t, "a@example.com", got.Email)
	require.Equal(t, "masterticket", got.Issuer)
	require.NotEmpty(t, got.ID)
}

func TestHS256_Rejections(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h := newSigner(t, now)

	valid, err := h.Sign(jwtx.NewSessionClaims("u", "s", "", "", "", now, now.Add(time.Hour)))
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := newSigner(t, now.Add(2*time.Hour))
		_, err := later.Verify(valid)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		earlier := newSigner(t, now.Add(-time.Minute))
		_, err := earlier.Verify(valid)
		require.ErrorIs(t, err, jwtx.ErrNotYetValid)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte("ffffffffffffffffffffffffffffffff"), "masterticket")
		require.NoError(t, err)
		_, err = other.Verify(valid)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("other issuer", func(t *testing.T) {
		other, err := jwtx.NewHS256(testSecret, "someone-else", jwtx.WithClock(func() time.Time { return now }))
		require.NoError(t, err)
		_, err = other.Verify(valid)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := h.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("alg none", func(t *testing.T) {
		c := jwtx.NewSessionClaims("u", "s", "", "", "masterticket", now, now.Add(time.Hour))
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = h.Verify(tok)
		require.Error(t, err)
	})
}

func TestHS256_RequiresSession(t *testing.T) {
	now := time.Now()
	h := newSigner(t, now)
	_, err := h.Sign(jwtx.NewSessionClaims("u", "", "", "", "", now, now.Add(time.Hour)))
	require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
}

func TestNewHS256_WeakSecret(t *testing.T) {
	_, err := jwtx.NewHS256([]byte("short"), "x")
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}
