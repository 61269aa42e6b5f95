package domain

import "time"

// Member binds a user to an organization, optionally narrowed to one team.
// A user holds at most one organization-level row and at most one row per
// team.
type Member struct {
	ID             string
	UserID         string
	OrganizationID string
	TeamID         string // empty for organization-level membership
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (m Member) OrganizationLevel() bool { return m.TeamID == "" }

// MemberWithUser is a member row joined with the user's public profile.
type MemberWithUser struct {
	Member
	UserName  string
	UserEmail string
}
