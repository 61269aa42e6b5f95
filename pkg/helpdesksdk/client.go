package helpdesksdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to the masterticket API. It covers the unauthenticated
// operations and creates Sessions on sign-in.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSessionFromToken wraps a token obtained elsewhere, e.g. one stored by a
// frontend.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}
