package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/store"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
)

// Scope is one level a role can be held at. An empty TeamID is the
// organization itself.
type Scope struct {
	OrganizationID string
	TeamID         string
}

// Scopes returns the scopes consulted for a target, most specific first.
func Scopes(organizationID, teamID string) []Scope {
	if teamID == "" {
		return []Scope{{OrganizationID: organizationID}}
	}
	return []Scope{
		{OrganizationID: organizationID, TeamID: teamID},
		{OrganizationID: organizationID},
	}
}

// Authorizer resolves a user's role for an organization or team.
type Authorizer struct {
	Store store.Store
}

// roleIn returns the role held in one scope, or "" when the user has none.
func (a *Authorizer) roleIn(ctx context.Context, st store.Store, userID string, sc Scope) (domain.Role, error) {
	m, err := st.Members().GetMemberInScope(ctx, userID, sc.OrganizationID, sc.TeamID)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load membership: %w", err)
	}
	return m.Role, nil
}

// ResolveRole returns the role from the most specific scope the user holds
// one in, or "" when the user is not a member of the target.
func (a *Authorizer) ResolveRole(ctx context.Context, userID, organizationID, teamID string) (domain.Role, error) {
	return a.resolveRole(ctx, a.Store, userID, organizationID, teamID)
}

func (a *Authorizer) resolveRole(ctx context.Context, st store.Store, userID, organizationID, teamID string) (domain.Role, error) {
	for _, sc := range Scopes(organizationID, teamID) {
		role, err := a.roleIn(ctx, st, userID, sc)
		if err != nil {
			return "", err
		}
		if role != "" {
			return role, nil
		}
	}
	return "", nil
}

// CanManage reports whether the user holds one of required in any scope
// covering the target. Scopes are checked team first, so a team admin can
// manage their own team and an organization admin can manage every team.
// With no required roles, owner and admin qualify.
func (a *Authorizer) CanManage(ctx context.Context, userID, organizationID, teamID string, required ...domain.Role) (bool, error) {
	return a.canManage(ctx, a.Store, userID, organizationID, teamID, required...)
}

func (a *Authorizer) canManage(ctx context.Context, st store.Store, userID, organizationID, teamID string, required ...domain.Role) (bool, error) {
	if len(required) == 0 {
		required = domain.ManagerRoles
	}
	for _, sc := range Scopes(organizationID, teamID) {
		role, err := a.roleIn(ctx, st, userID, sc)
		if err != nil {
			return false, err
		}
		if role != "" && role.In(required...) {
			return true, nil
		}
	}
	return false, nil
}

// authorize is CanManage folded into ErrForbidden, logging the denial.
func (a *Authorizer) authorize(ctx context.Context, st store.Store, userID, organizationID, teamID string, required ...domain.Role) error {
	log := slogx.FromContext(ctx)

	ok, err := a.canManage(ctx, st, userID, organizationID, teamID, required...)
	if err != nil {
		log.Error("failed to resolve role", slogx.Err(err))
		return err
	}
	if !ok {
		log.Warn("permission denied",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID),
			slog.String("team_id", teamID),
		)
		return ErrForbidden
	}
	return nil
}
