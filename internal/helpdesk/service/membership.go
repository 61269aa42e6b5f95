package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/store"
	"github.com/Best-Company-A-S/masterticket/pkg/idx"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
)

// MembershipService changes who belongs to an organization or team. Every
// mutation keeps at least one owner in the affected scope.
type MembershipService struct {
	Store      store.Store
	Authorizer *Authorizer
	Clock      Clock
}

type ChangeRoleInput struct {
	MemberID string      `json:"memberId" validate:"required"`
	TeamID   string      `json:"teamId"`
	Role     domain.Role `json:"role" validate:"required,role"`
}

type RemoveMemberInput struct {
	MemberID string `json:"memberId" validate:"required"`
	TeamID   string `json:"teamId"`
}

type CreateTeamInput struct {
	OrganizationID string `json:"organizationId" validate:"required"`
	Name           string `json:"name" validate:"required,max=100"`
}

type AddTeamMemberInput struct {
	TeamID string      `json:"teamId" validate:"required"`
	UserID string      `json:"userId" validate:"required"`
	Role   domain.Role `json:"role" validate:"omitempty,role"`
}

// requiredFor returns the roles allowed to grant or take away role r. Only
// owners hand out or touch the owner role.
func requiredFor(roles ...domain.Role) []domain.Role {
	for _, r := range roles {
		if r == domain.RoleOwner {
			return []domain.Role{domain.RoleOwner}
		}
	}
	return domain.ManagerRoles
}

// loadTarget fetches the member and checks it sits in the stated team. A
// member outside that team is reported as not found.
func (s *MembershipService) loadTarget(ctx context.Context, st store.Store, memberID, teamID string) (domain.Member, error) {
	m, err := st.Members().GetMemberByID(ctx, memberID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Member{}, ErrMemberNotFound
	}
	if err != nil {
		return domain.Member{}, fmt.Errorf("load member: %w", err)
	}
	if m.TeamID != teamID {
		return domain.Member{}, ErrMemberNotFound
	}
	return m, nil
}

// ensureNotLastOwner rejects taking the owner role away from m when no other
// owner remains in the same scope.
func ensureNotLastOwner(ctx context.Context, st store.Store, m domain.Member) error {
	if m.Role != domain.RoleOwner {
		return nil
	}
	n, err := st.Members().CountOwners(ctx, m.OrganizationID, m.TeamID)
	if err != nil {
		return fmt.Errorf("count owners: %w", err)
	}
	if n <= 1 {
		return ErrLastOwner
	}
	return nil
}

// ChangeRole sets a member's role within its scope.
func (s *MembershipService) ChangeRole(ctx context.Context, actor domain.ActiveContext, in ChangeRoleInput) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	if err := validateInput(in); err != nil {
		log.Warn("invalid role change request", slogx.Err(err))
		return domain.Member{}, err
	}

	now := s.Clock.now()
	var out domain.Member

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		m, err := s.loadTarget(ctx, tx, in.MemberID, in.TeamID)
		if err != nil {
			return err
		}
		if err := s.Authorizer.authorize(ctx, tx, actor.UserID, m.OrganizationID, m.TeamID, requiredFor(m.Role, in.Role)...); err != nil {
			return err
		}

		if m.Role == in.Role {
			out = m
			return nil
		}
		if in.Role != domain.RoleOwner {
			if err := ensureNotLastOwner(ctx, tx, m); err != nil {
				return err
			}
		}

		if err := tx.Members().UpdateMemberRole(ctx, m.ID, in.Role, now); err != nil {
			return fmt.Errorf("update role: %w", err)
		}
		m.Role = in.Role
		m.UpdatedAt = now
		out = m
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "role change", err, slog.String("member_id", in.MemberID))
		return domain.Member{}, err
	}

	log.Info("member role changed",
		slog.String("member_id", out.ID),
		slog.String("organization_id", out.OrganizationID),
		slog.String("team_id", out.TeamID),
		slog.String("role", out.Role.String()),
		slog.String("changed_by", actor.UserID),
	)
	return out, nil
}

// RemoveMember deletes a membership row. Members may always remove
// themselves, subject to the last-owner rule.
func (s *MembershipService) RemoveMember(ctx context.Context, actor domain.ActiveContext, in RemoveMemberInput) error {
	log := slogx.FromContext(ctx)

	if err := validateInput(in); err != nil {
		log.Warn("invalid member removal request", slogx.Err(err))
		return err
	}

	var removed domain.Member
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		m, err := s.loadTarget(ctx, tx, in.MemberID, in.TeamID)
		if err != nil {
			return err
		}
		if m.UserID != actor.UserID {
			if err := s.Authorizer.authorize(ctx, tx, actor.UserID, m.OrganizationID, m.TeamID, requiredFor(m.Role)...); err != nil {
				return err
			}
		}
		if err := ensureNotLastOwner(ctx, tx, m); err != nil {
			return err
		}
		if err := tx.Members().DeleteMember(ctx, m.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrMemberNotFound
			}
			return fmt.Errorf("delete member: %w", err)
		}
		removed = m
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "member removal", err, slog.String("member_id", in.MemberID))
		return err
	}

	log.Info("member removed",
		slog.String("member_id", removed.ID),
		slog.String("user_id", removed.UserID),
		slog.String("organization_id", removed.OrganizationID),
		slog.String("team_id", removed.TeamID),
		slog.String("removed_by", actor.UserID),
	)
	return nil
}

// CreateTeam creates a team and makes the creator its owner, or its admin
// when the creator is an organization admin rather than owner.
func (s *MembershipService) CreateTeam(ctx context.Context, actor domain.ActiveContext, in CreateTeamInput) (domain.Team, error) {
	log := slogx.FromContext(ctx)

	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		log.Warn("invalid team request", slogx.Err(err))
		return domain.Team{}, err
	}

	now := s.Clock.now()
	team := domain.Team{
		ID:             idx.NewString(),
		OrganizationID: in.OrganizationID,
		Name:           in.Name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Organizations().GetOrganizationByID(ctx, in.OrganizationID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrOrganizationNotFound
			}
			return fmt.Errorf("load organization: %w", err)
		}

		orgRole, err := s.Authorizer.roleIn(ctx, tx, actor.UserID, Scope{OrganizationID: in.OrganizationID})
		if err != nil {
			return err
		}
		if !orgRole.In(domain.ManagerRoles...) {
			log.Warn("permission denied",
				slog.String("user_id", actor.UserID),
				slog.String("organization_id", in.OrganizationID),
			)
			return ErrForbidden
		}

		if _, err := tx.Teams().GetTeamByName(ctx, in.OrganizationID, in.Name); err == nil {
			return ErrDuplicateTeamName
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("check team name: %w", err)
		}

		if err := tx.Teams().CreateTeam(ctx, team); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateTeamName
			}
			return fmt.Errorf("create team: %w", err)
		}

		creatorRole := domain.RoleAdmin
		if orgRole == domain.RoleOwner {
			creatorRole = domain.RoleOwner
		}
		return tx.Members().CreateMember(ctx, domain.Member{
			ID:             idx.NewString(),
			UserID:         actor.UserID,
			OrganizationID: in.OrganizationID,
			TeamID:         team.ID,
			Role:           creatorRole,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	})
	if err != nil {
		s.logFailure(ctx, "team creation", err, slog.String("organization_id", in.OrganizationID))
		return domain.Team{}, err
	}

	log.Info("team created",
		slog.String("team_id", team.ID),
		slog.String("organization_id", team.OrganizationID),
		slog.String("created_by", actor.UserID),
	)
	return team, nil
}

// AddTeamMember places an existing organization member into a team. New
// users join through invitations instead.
func (s *MembershipService) AddTeamMember(ctx context.Context, actor domain.ActiveContext, in AddTeamMemberInput) (domain.Member, error) {
	log := slogx.FromContext(ctx)

	if in.Role == "" {
		in.Role = domain.RoleMember
	}
	if err := validateInput(in); err != nil {
		log.Warn("invalid team member request", slogx.Err(err))
		return domain.Member{}, err
	}

	now := s.Clock.now()
	var out domain.Member

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		team, err := tx.Teams().GetTeamByID(ctx, in.TeamID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrTeamNotFound
		}
		if err != nil {
			return fmt.Errorf("load team: %w", err)
		}

		if err := s.Authorizer.authorize(ctx, tx, actor.UserID, team.OrganizationID, team.ID, requiredFor(in.Role)...); err != nil {
			return err
		}

		inOrg, err := tx.Members().IsOrganizationMember(ctx, in.UserID, team.OrganizationID)
		if err != nil {
			return fmt.Errorf("check membership: %w", err)
		}
		if !inOrg {
			return ErrMemberNotFound
		}

		out = domain.Member{
			ID:             idx.NewString(),
			UserID:         in.UserID,
			OrganizationID: team.OrganizationID,
			TeamID:         team.ID,
			Role:           in.Role,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.Members().CreateMember(ctx, out); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyMember
			}
			return fmt.Errorf("create member: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "team member addition", err, slog.String("team_id", in.TeamID))
		return domain.Member{}, err
	}

	log.Info("team member added",
		slog.String("member_id", out.ID),
		slog.String("team_id", out.TeamID),
		slog.String("user_id", out.UserID),
		slog.String("added_by", actor.UserID),
	)
	return out, nil
}

// ListMembers lists one scope of an organization. Any member of the
// organization may list it.
func (s *MembershipService) ListMembers(ctx context.Context, actor domain.ActiveContext, organizationID, teamID string) ([]domain.MemberWithUser, error) {
	log := slogx.FromContext(ctx)

	if organizationID == "" {
		return nil, fmt.Errorf("%w: organizationId is required", ErrInvalidInput)
	}

	if _, err := s.Store.Organizations().GetOrganizationByID(ctx, organizationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		log.Error("failed to load organization", slogx.Err(err))
		return nil, err
	}
	if teamID != "" {
		team, err := s.Store.Teams().GetTeamByID(ctx, teamID)
		if errors.Is(err, store.ErrNotFound) || (err == nil && team.OrganizationID != organizationID) {
			return nil, ErrTeamNotFound
		}
		if err != nil {
			log.Error("failed to load team", slogx.Err(err))
			return nil, err
		}
	}

	ok, err := s.Store.Members().IsOrganizationMember(ctx, actor.UserID, organizationID)
	if err != nil {
		log.Error("failed to check membership", slogx.Err(err))
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	members, err := s.Store.Members().ListMembers(ctx, organizationID, teamID)
	if err != nil {
		log.Error("failed to list members", slogx.Err(err))
		return nil, err
	}
	return members, nil
}

func (s *MembershipService) logFailure(ctx context.Context, op string, err error, attrs ...any) {
	log := slogx.FromContext(ctx).With(attrs...)
	if isDomainError(err) {
		log.Warn(op+" rejected", slogx.Err(err))
		return
	}
	log.Error(op+" failed", slogx.Err(err))
}
