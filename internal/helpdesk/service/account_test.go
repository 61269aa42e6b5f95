package service

import (
	"strings"
	"testing"
	"time"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAccounts(t *testing.T, e *env) *AccountService {
	t.Helper()
	h, err := jwtx.NewHS256([]byte(testSecret), "masterticket-test", jwtx.WithClock(e.clock.Now))
	require.NoError(t, err)
	return &AccountService{
		Store:      e.store,
		Signer:     h,
		Verifier:   h,
		Issuer:     "masterticket-test",
		SessionTTL: 24 * time.Hour,
		Clock:      e.clock.Now,
	}
}

func TestSignUp(t *testing.T) {
	e := newEnv(t)
	acc := newAccounts(t, e)

	u, err := acc.SignUp(e.ctx, SignUpInput{Email: " Alice@Example.com ", Name: "Alice", Password: "correct horse"})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", u.Email)
	require.True(t, strings.HasPrefix(u.PasswordHash, "$argon2id$"))

	_, err = acc.SignUp(e.ctx, SignUpInput{Email: "ALICE@example.com", Name: "Imposter", Password: "correct horse"})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = acc.SignUp(e.ctx, SignUpInput{Email: "bob@example.com", Name: "Bob", Password: "short"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = acc.SignUp(e.ctx, SignUpInput{Email: "not-an-email", Name: "Bob", Password: "long enough"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSignInResolveSignOut(t *testing.T) {
	e := newEnv(t)
	acc := newAccounts(t, e)

	u, err := acc.SignUp(e.ctx, SignUpInput{Email: "alice@example.com", Name: "Alice", Password: "correct horse"})
	require.NoError(t, err)

	_, err = acc.SignIn(e.ctx, SignInInput{Email: "alice@example.com", Password: "wrong horse"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = acc.SignIn(e.ctx, SignInInput{Email: "nobody@example.com", Password: "correct horse"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	res, err := acc.SignIn(e.ctx, SignInInput{Email: "ALICE@example.com", Password: "correct horse"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, u.ID, res.User.ID)
	require.Equal(t, t0.Add(24*time.Hour), res.Session.ExpiresAt)

	a, err := acc.Resolve(e.ctx, res.Token)
	require.NoError(t, err)
	require.Equal(t, domain.ActiveContext{UserID: u.ID, SessionID: res.Session.ID}, a)

	sess, user, err := acc.Session(e.ctx, a)
	require.NoError(t, err)
	require.Equal(t, res.Session.ID, sess.ID)
	require.Equal(t, "Alice", user.Name)

	require.NoError(t, acc.SignOut(e.ctx, a))
	require.NoError(t, acc.SignOut(e.ctx, a), "signing out twice is harmless")

	_, err = acc.Resolve(e.ctx, res.Token)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolve_Rejections(t *testing.T) {
	e := newEnv(t)
	acc := newAccounts(t, e)

	_, err := acc.SignUp(e.ctx, SignUpInput{Email: "alice@example.com", Name: "Alice", Password: "correct horse"})
	require.NoError(t, err)
	res, err := acc.SignIn(e.ctx, SignInInput{Email: "alice@example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, err = acc.Resolve(e.ctx, "")
	require.ErrorIs(t, err, ErrUnauthenticated)
	_, err = acc.Resolve(e.ctx, "not.a.jwt")
	require.ErrorIs(t, err, ErrUnauthenticated)

	other, err := jwtx.NewHS256([]byte(strings.Repeat("x", 32)), "masterticket-test", jwtx.WithClock(e.clock.Now))
	require.NoError(t, err)
	forged, err := other.Sign(jwtx.NewSessionClaims(res.User.ID, res.Session.ID, "", "", "masterticket-test", t0, t0.Add(time.Hour)))
	require.NoError(t, err)
	_, err = acc.Resolve(e.ctx, forged)
	require.ErrorIs(t, err, ErrUnauthenticated)

	// Once the session expires the token stops working.
	e.clock.Advance(25 * time.Hour)
	_, err = acc.Resolve(e.ctx, res.Token)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolve_SubjectMustOwnSession(t *testing.T) {
	e := newEnv(t)
	acc := newAccounts(t, e)

	_, err := acc.SignUp(e.ctx, SignUpInput{Email: "alice@example.com", Name: "Alice", Password: "correct horse"})
	require.NoError(t, err)
	res, err := acc.SignIn(e.ctx, SignInInput{Email: "alice@example.com", Password: "correct horse"})
	require.NoError(t, err)

	token, err := acc.Signer.Sign(jwtx.NewSessionClaims("someone-else", res.Session.ID, "", "", "masterticket-test", t0, t0.Add(time.Hour)))
	require.NoError(t, err)
	_, err = acc.Resolve(e.ctx, token)
	require.ErrorIs(t, err, ErrUnauthenticated)
}
