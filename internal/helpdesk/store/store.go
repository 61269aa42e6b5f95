package store

import (
	"context"
	"errors"
	"time"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers expose one sub-repository
// per aggregate; multi-step writes go through WithTx so every repository
// used inside fn shares the transaction.
type Store interface {
	Users() Users
	Sessions() Sessions
	Organizations() Organizations
	Teams() Teams
	Members() Members
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx commits when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	CreateUser(ctx context.Context, u domain.User) error
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches case-insensitively.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Sessions interface {
	CreateSession(ctx context.Context, s domain.Session) error
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)

	// GetLatestSessionForUser returns the most recently created session,
	// whether or not it is still active.
	GetLatestSessionForUser(ctx context.Context, userID string) (domain.Session, error)

	// SetActiveOrganization replaces the session's active organization.
	SetActiveOrganization(ctx context.Context, sessionID, organizationID string, at time.Time) error

	RevokeSession(ctx context.Context, sessionID string, at time.Time) error

	// DeleteStaleSessions removes sessions that expired or were revoked
	// before cutoff and returns how many were removed.
	DeleteStaleSessions(ctx context.Context, cutoff time.Time) (int64, error)
}

type Organizations interface {
	// CreateOrganization fails with ErrAlreadyExists on a slug clash.
	CreateOrganization(ctx context.Context, o domain.Organization) error
	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)
	GetOrganizationBySlug(ctx context.Context, slug string) (domain.Organization, error)
}

type Teams interface {
	// CreateTeam fails with ErrAlreadyExists when the organization already
	// has a team with that name.
	CreateTeam(ctx context.Context, t domain.Team) error
	GetTeamByID(ctx context.Context, id string) (domain.Team, error)
	GetTeamByName(ctx context.Context, organizationID, name string) (domain.Team, error)
}

type Members interface {
	// CreateMember fails with ErrAlreadyExists when the user already holds a
	// row in the same scope.
	CreateMember(ctx context.Context, m domain.Member) error
	GetMemberByID(ctx context.Context, id string) (domain.Member, error)

	// GetMemberInScope returns the user's row for the organization when
	// teamID is empty, or for that team otherwise.
	GetMemberInScope(ctx context.Context, userID, organizationID, teamID string) (domain.Member, error)

	// IsOrganizationMember reports whether the user holds any row, at
	// organization or team level, in the organization.
	IsOrganizationMember(ctx context.Context, userID, organizationID string) (bool, error)

	// CountOwners counts owner rows in exactly one scope.
	CountOwners(ctx context.Context, organizationID, teamID string) (int, error)

	UpdateMemberRole(ctx context.Context, id string, role domain.Role, at time.Time) error
	DeleteMember(ctx context.Context, id string) error

	// ListMembers lists one scope: organization-level rows when teamID is
	// empty, otherwise the team's rows.
	ListMembers(ctx context.Context, organizationID, teamID string) ([]domain.MemberWithUser, error)
}

type Invitations interface {
	// CreateInvitation fails with ErrAlreadyExists when the code is taken.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// CodeExists checks every invitation regardless of status or expiry.
	CodeExists(ctx context.Context, code string) (bool, error)

	GetInvitationByCode(ctx context.Context, code string) (domain.Invitation, error)
	GetInvitationDetailsByCode(ctx context.Context, code string) (domain.InvitationDetails, error)

	// MarkInvitationAccepted flips a pending invitation to accepted. It
	// returns ErrNotFound when the invitation is no longer pending.
	MarkInvitationAccepted(ctx context.Context, id, userID string, at time.Time) error
}
