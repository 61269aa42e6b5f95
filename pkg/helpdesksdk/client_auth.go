package helpdesksdk

import (
	"context"
	"net/http"
)

// SignUp registers a new account. It does not sign in.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*User, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/sign-up", "", req)
	if err != nil {
		return nil, err
	}

	var out SignUpResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// SignIn exchanges credentials for a Session.
func (c *Client) SignIn(ctx context.Context, req SignInRequest) (*Session, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/sign-in", "", req)
	if err != nil {
		return nil, err
	}

	var out SignInResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &Session{
		client:    c,
		token:     out.Token,
		expiresAt: out.ExpiresAt,
		user:      out.User,
	}, nil
}
