package helpdesksdk

import (
	"context"
	"net/http"
	"time"
)

// Session is a signed-in caller. The token is fixed for the lifetime of the
// Session; sign in again once it expires.
type Session struct {
	client *Client

	token     string
	expiresAt time.Time
	user      User
}

func (s *Session) Token() string { return s.token }

// ExpiresAt is zero for sessions built from a bare token.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// User is the account that signed in. Empty for sessions built from a bare
// token; use Current to fetch it.
func (s *Session) User() User { return s.user }

func (s *Session) call(ctx context.Context, method, path string, body, out any) error {
	resp, err := s.client.do(ctx, method, path, s.token, body)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out, http.StatusOK)
}

// Current returns the server's view of the session, including the active
// organization.
func (s *Session) Current(ctx context.Context) (*SessionResponse, error) {
	var out SessionResponse
	if err := s.call(ctx, http.MethodGet, "/api/auth/session", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignOut revokes the session on the server.
func (s *Session) SignOut(ctx context.Context) error {
	var out SuccessResponse
	return s.call(ctx, http.MethodPost, "/api/auth/sign-out", nil, &out)
}
