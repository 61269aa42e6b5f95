package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/store"
	"github.com/Best-Company-A-S/masterticket/pkg/cryptox"
	"github.com/Best-Company-A-S/masterticket/pkg/idx"
	"github.com/Best-Company-A-S/masterticket/pkg/jwtx"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
)

// AccountService owns users and their sign-in sessions. Access tokens are
// bound to a session row, so signing out or deleting the session invalidates
// the token before it expires.
type AccountService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string

	// SessionTTL defaults to jwtx.DefaultSessionTTL.
	SessionTTL time.Duration
	Clock      Clock
}

type SignUpInput struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInResult carries the access token and the session it names.
type SignInResult struct {
	Token   string
	Session domain.Session
	User    domain.User
}

func (s *AccountService) SignUp(ctx context.Context, in SignUpInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		log.Warn("invalid sign-up request", slogx.Err(err))
		return domain.User{}, err
	}

	if _, err := s.Store.Users().GetUserByEmail(ctx, in.Email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to look up user", slogx.Err(err))
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slogx.Err(err))
		return domain.User{}, err
	}

	now := s.Clock.now()
	u := domain.User{
		ID:           idx.NewString(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create user", slogx.Err(err))
		return domain.User{}, err
	}

	log.Info("user signed up", slog.String("user_id", u.ID))
	return u, nil
}

// SignIn checks the password and opens a new session. Unknown e-mail and
// wrong password are indistinguishable to the caller.
func (s *AccountService) SignIn(ctx context.Context, in SignInInput) (SignInResult, error) {
	log := slogx.FromContext(ctx)

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateInput(in); err != nil {
		log.Warn("invalid sign-in request", slogx.Err(err))
		return SignInResult{}, err
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, in.Email)
	if errors.Is(err, store.ErrNotFound) {
		log.Warn("sign-in failed: unknown email")
		return SignInResult{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Error("failed to look up user", slogx.Err(err))
		return SignInResult{}, err
	}

	if err := cryptox.VerifyPassword(in.Password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("sign-in failed: wrong password", slog.String("user_id", u.ID))
			return SignInResult{}, ErrInvalidCredentials
		}
		log.Error("failed to verify password", slog.String("user_id", u.ID), slogx.Err(err))
		return SignInResult{}, err
	}

	ttl := s.SessionTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	now := s.Clock.now()
	sess := domain.Session{
		ID:        idx.NewString(),
		UserID:    u.ID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}

	token, err := s.Signer.Sign(jwtx.NewSessionClaims(u.ID, sess.ID, u.Email, u.Name, s.Issuer, now, sess.ExpiresAt))
	if err != nil {
		log.Error("failed to sign access token", slogx.Err(err))
		return SignInResult{}, err
	}

	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		log.Error("failed to create session", slogx.Err(err))
		return SignInResult{}, err
	}

	log.Info("user signed in", slog.String("user_id", u.ID), slog.String("session_id", sess.ID))
	return SignInResult{Token: token, Session: sess, User: u}, nil
}

// SignOut revokes the actor's session. Revoking twice is not an error.
func (s *AccountService) SignOut(ctx context.Context, actor domain.ActiveContext) error {
	log := slogx.FromContext(ctx)

	if err := s.Store.Sessions().RevokeSession(ctx, actor.SessionID, s.Clock.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnauthenticated
		}
		log.Error("failed to revoke session", slogx.Err(err))
		return err
	}

	log.Info("user signed out", slog.String("user_id", actor.UserID), slog.String("session_id", actor.SessionID))
	return nil
}

// Resolve turns an access token into the caller's ActiveContext. The
// session must still exist, be unrevoked and unexpired, and belong to the
// token's subject.
func (s *AccountService) Resolve(ctx context.Context, token string) (domain.ActiveContext, error) {
	log := slogx.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return domain.ActiveContext{}, ErrUnauthenticated
	}

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		log.Debug("access token rejected", slogx.Err(err))
		return domain.ActiveContext{}, ErrUnauthenticated
	}

	sess, err := s.Store.Sessions().GetSessionByID(ctx, claims.SID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.ActiveContext{}, ErrUnauthenticated
	}
	if err != nil {
		log.Error("failed to load session", slogx.Err(err))
		return domain.ActiveContext{}, err
	}
	if sess.UserID != claims.Subject || !sess.ActiveAt(s.Clock.now()) {
		return domain.ActiveContext{}, ErrUnauthenticated
	}

	return domain.ActiveContext{
		UserID:               sess.UserID,
		SessionID:            sess.ID,
		ActiveOrganizationID: sess.ActiveOrganizationID,
	}, nil
}

// Session returns the actor's session together with its user.
func (s *AccountService) Session(ctx context.Context, actor domain.ActiveContext) (domain.Session, domain.User, error) {
	sess, err := s.Store.Sessions().GetSessionByID(ctx, actor.SessionID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, domain.User{}, ErrUnauthenticated
	}
	if err != nil {
		return domain.Session{}, domain.User{}, fmt.Errorf("load session: %w", err)
	}
	u, err := s.Store.Users().GetUserByID(ctx, sess.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.Session{}, domain.User{}, fmt.Errorf("load user: %w", err)
	}
	return sess, u, nil
}
