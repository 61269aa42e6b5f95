package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/store"
	"github.com/Best-Company-A-S/masterticket/pkg/idx"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
)

// InvitationTTL is fixed; invitations cannot be extended.
const InvitationTTL = 48 * time.Hour

type InvitationService struct {
	Store      store.Store
	Authorizer *Authorizer
	Notifier   Notifier

	// Optional seams, defaulted when nil or zero.
	Codes       CodeGenerator
	MaxAttempts int
	Clock       Clock
}

type GenerateInvitationInput struct {
	OrganizationID string      `json:"organizationId" validate:"required"`
	TeamID         string      `json:"teamId"`
	Role           domain.Role `json:"role" validate:"omitempty,role"`
	Email          string      `json:"email" validate:"omitempty,email,max=254"`
}

// RedeemResult is the outcome of a successful join.
type RedeemResult struct {
	Member                domain.Member
	Invitation            domain.Invitation
	ActiveOrganizationSet bool
}

// Generate mints a pending invitation for an organization, or one of its
// teams, that any signed-in user can redeem within InvitationTTL.
func (s *InvitationService) Generate(ctx context.Context, actor domain.ActiveContext, in GenerateInvitationInput) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	in.Email = strings.TrimSpace(in.Email)
	if in.Role == "" {
		in.Role = domain.RoleMember
	}
	if err := validateInput(in); err != nil {
		log.Warn("invalid invitation request", slogx.Err(err))
		return domain.Invitation{}, err
	}

	if _, err := s.Store.Organizations().GetOrganizationByID(ctx, in.OrganizationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrOrganizationNotFound
		}
		log.Error("failed to load organization", slogx.Err(err))
		return domain.Invitation{}, err
	}

	if in.TeamID != "" {
		team, err := s.Store.Teams().GetTeamByID(ctx, in.TeamID)
		if errors.Is(err, store.ErrNotFound) || (err == nil && team.OrganizationID != in.OrganizationID) {
			return domain.Invitation{}, ErrTeamNotFound
		}
		if err != nil {
			log.Error("failed to load team", slogx.Err(err))
			return domain.Invitation{}, err
		}
	}

	if err := s.Authorizer.authorize(ctx, s.Store, actor.UserID, in.OrganizationID, in.TeamID, requiredFor(in.Role)...); err != nil {
		return domain.Invitation{}, err
	}

	now := s.Clock.now()
	inv := domain.Invitation{
		Email:          in.Email,
		OrganizationID: in.OrganizationID,
		TeamID:         in.TeamID,
		Role:           in.Role,
		InviterID:      actor.UserID,
		Status:         domain.InvitationPending,
		ExpiresAt:      now.Add(InvitationTTL),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.insertWithUniqueCode(ctx, &inv); err != nil {
		if errors.Is(err, ErrCodeExhausted) {
			log.Error("invitation code space exhausted", slog.String("organization_id", in.OrganizationID))
		} else {
			log.Error("failed to create invitation", slogx.Err(err))
		}
		return domain.Invitation{}, err
	}

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("organization_id", inv.OrganizationID),
		slog.String("team_id", inv.TeamID),
		slog.String("role", inv.Role.String()),
		slog.Time("expires_at", inv.ExpiresAt),
	)

	if inv.Email != "" && s.Notifier != nil {
		if err := s.notify(ctx, inv); err != nil {
			// The invitation is committed; the inviter can still share the code.
			log.Warn("failed to send invitation email", slog.String("invitation_id", inv.ID), slogx.Err(err))
		}
	}

	return inv, nil
}

// insertWithUniqueCode probes for a free code and inserts the invitation. A
// unique constraint hit on insert means another request claimed the code
// between probe and insert, so the search resumes with the remaining budget.
func (s *InvitationService) insertWithUniqueCode(ctx context.Context, inv *domain.Invitation) error {
	budget := s.MaxAttempts
	if budget <= 0 {
		budget = MaxCodeAttempts
	}

	attempts := 0
	exists := func(ctx context.Context, code string) (bool, error) {
		attempts++
		return s.Store.Invitations().CodeExists(ctx, code)
	}

	for attempts < budget {
		code, err := GenerateUniqueCode(ctx, s.Codes, exists, budget-attempts)
		if err != nil {
			return err
		}

		inv.ID = idx.NewString()
		inv.Code = code
		err = s.Store.Invitations().CreateInvitation(ctx, *inv)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return err
		}
		slogx.FromContext(ctx).Debug("invitation code claimed concurrently, retrying")
	}
	return ErrCodeExhausted
}

func (s *InvitationService) notify(ctx context.Context, inv domain.Invitation) error {
	details, err := s.Store.Invitations().GetInvitationDetailsByCode(ctx, inv.Code)
	if err != nil {
		return fmt.Errorf("load invitation details: %w", err)
	}
	return s.Notifier.InvitationCreated(ctx, details)
}

// FindByCode returns the invitation with its organization, team and inviter
// summaries. It does not filter expired or accepted invitations.
func (s *InvitationService) FindByCode(ctx context.Context, code string) (domain.InvitationDetails, error) {
	log := slogx.FromContext(ctx)

	code = strings.TrimSpace(code)
	if code == "" {
		return domain.InvitationDetails{}, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if !isInvitationCode(code) {
		return domain.InvitationDetails{}, ErrInvalidCode
	}

	d, err := s.Store.Invitations().GetInvitationDetailsByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.InvitationDetails{}, ErrInvitationNotFound
		}
		log.Error("failed to load invitation", slogx.Err(err))
		return domain.InvitationDetails{}, err
	}
	return d, nil
}

// Redeem joins the actor to the invitation's organization or team. Checks
// run in order: existence, expiry, status, existing membership. The member
// row, the accepted status and the session's active organization are
// written in one transaction.
func (s *InvitationService) Redeem(ctx context.Context, actor domain.ActiveContext, code string) (RedeemResult, error) {
	log := slogx.FromContext(ctx)

	code = strings.TrimSpace(code)
	if code == "" {
		return RedeemResult{}, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if !isInvitationCode(code) {
		return RedeemResult{}, ErrInvalidCode
	}

	now := s.Clock.now()
	var res RedeemResult

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		inv, err := tx.Invitations().GetInvitationByCode(ctx, code)
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		if err != nil {
			return fmt.Errorf("load invitation: %w", err)
		}
		if inv.ExpiredAt(now) {
			return ErrInvitationExpired
		}
		if inv.Used() {
			return ErrInvitationAlreadyUsed
		}

		member, err := tx.Members().IsOrganizationMember(ctx, actor.UserID, inv.OrganizationID)
		if err != nil {
			return fmt.Errorf("check membership: %w", err)
		}
		if member {
			return ErrAlreadyMember
		}

		m := domain.Member{
			ID:             idx.NewString(),
			UserID:         actor.UserID,
			OrganizationID: inv.OrganizationID,
			TeamID:         inv.TeamID,
			Role:           inv.Role,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := tx.Members().CreateMember(ctx, m); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrAlreadyMember
			}
			return fmt.Errorf("create member: %w", err)
		}

		if err := tx.Invitations().MarkInvitationAccepted(ctx, inv.ID, actor.UserID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationAlreadyUsed
			}
			return fmt.Errorf("accept invitation: %w", err)
		}
		inv.Status = domain.InvitationAccepted
		inv.AcceptedBy = actor.UserID
		inv.AcceptedAt = &now

		set, err := activateIfUnset(ctx, tx, actor.UserID, inv.OrganizationID, now)
		if err != nil {
			return err
		}

		res = RedeemResult{Member: m, Invitation: inv, ActiveOrganizationSet: set}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			log.Warn("invitation redemption rejected", slog.String("user_id", actor.UserID), slogx.Err(err))
		} else {
			log.Error("invitation redemption failed", slog.String("user_id", actor.UserID), slogx.Err(err))
		}
		return RedeemResult{}, err
	}

	log.Info("invitation redeemed",
		slog.String("invitation_id", res.Invitation.ID),
		slog.String("user_id", actor.UserID),
		slog.String("organization_id", res.Member.OrganizationID),
		slog.String("team_id", res.Member.TeamID),
		slog.Bool("active_organization_set", res.ActiveOrganizationSet),
	)
	return res, nil
}

// activateIfUnset makes organizationID the active organization of the user's
// most recent session when that session has none.
func activateIfUnset(ctx context.Context, tx store.Tx, userID, organizationID string, now time.Time) (bool, error) {
	sess, err := tx.Sessions().GetLatestSessionForUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load latest session: %w", err)
	}
	if sess.ActiveOrganizationID != "" {
		return false, nil
	}
	if err := tx.Sessions().SetActiveOrganization(ctx, sess.ID, organizationID, now); err != nil {
		return false, fmt.Errorf("set active organization: %w", err)
	}
	return true, nil
}

func isInvitationCode(code string) bool {
	return validate.Var(code, "invitecode") == nil
}

// isDomainError separates expected rejections from infrastructure failures
// for logging.
func isDomainError(err error) bool {
	for _, target := range []error{
		ErrForbidden, ErrInvalidInput, ErrInvalidRole, ErrInvalidCode,
		ErrInvitationNotFound, ErrOrganizationNotFound, ErrTeamNotFound, ErrMemberNotFound, ErrUserNotFound,
		ErrInvitationExpired, ErrInvitationAlreadyUsed, ErrAlreadyMember, ErrLastOwner,
		ErrDuplicateTeamName, ErrDuplicateSlug, ErrEmailTaken,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
