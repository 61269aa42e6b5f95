package service

import "errors"

// Unauthenticated.
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Unauthorized.
var ErrForbidden = errors.New("insufficient permissions")

// NotFound.
var (
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrTeamNotFound         = errors.New("team not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrUserNotFound         = errors.New("user not found")
)

// Validation.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidCode  = errors.New("invalid invitation code format")
)

// State conflicts.
var (
	ErrInvitationExpired     = errors.New("invitation has expired")
	ErrInvitationAlreadyUsed = errors.New("invitation has already been used")
	ErrAlreadyMember         = errors.New("user is already a member of this organization")
	ErrLastOwner             = errors.New("cannot remove or demote the last owner")
	ErrDuplicateTeamName     = errors.New("a team with this name already exists in the organization")
	ErrDuplicateSlug         = errors.New("an organization with this slug already exists")
	ErrEmailTaken            = errors.New("email already registered")
)

// ErrCodeExhausted means no free invitation code was found within the
// attempt budget.
var ErrCodeExhausted = errors.New("failed to generate a unique invitation code")
