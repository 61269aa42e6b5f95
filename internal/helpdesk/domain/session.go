package domain

import "time"

type Session struct {
	ID                   string
	UserID               string
	ActiveOrganizationID string // empty until the user picks or joins an organization
	ExpiresAt            time.Time
	RevokedAt            *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ActiveAt reports whether the session can still authenticate requests.
func (s Session) ActiveAt(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// ActiveContext identifies the caller of a service operation. It is resolved
// once per request from the session token and passed explicitly.
type ActiveContext struct {
	UserID               string
	SessionID            string
	ActiveOrganizationID string
}
