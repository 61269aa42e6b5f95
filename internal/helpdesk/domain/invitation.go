package domain

import "time"

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
)

// Invitation is a single-use numeric join code. Expiry is derived from
// ExpiresAt and is not a stored status.
type Invitation struct {
	ID             string
	Code           string
	Email          string // optional invitee address
	OrganizationID string
	TeamID         string // empty for organization-level invitations
	Role           Role
	InviterID      string
	Status         InvitationStatus
	ExpiresAt      time.Time
	AcceptedBy     string
	AcceptedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (i Invitation) ExpiredAt(now time.Time) bool { return i.ExpiresAt.Before(now) }

func (i Invitation) Used() bool { return i.Status != InvitationPending }

// InvitationDetails is what a prospective member sees before joining.
type InvitationDetails struct {
	Invitation
	OrganizationName string
	OrganizationSlug string
	TeamName         string
	InviterName      string
	InviterEmail     string
}
