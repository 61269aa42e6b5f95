package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/store"
	"github.com/Best-Company-A-S/masterticket/pkg/idx"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
)

type OrganizationService struct {
	Store store.Store
	Clock Clock
}

const maxSlugLength = 64

type CreateOrganizationInput struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"omitempty,max=64"`
}

// Slugify lowercases name and collapses every run of characters other than
// ASCII letters and digits into a single hyphen.
func Slugify(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// Create makes a new organization owned by the actor. When the actor's
// session has no active organization the new one becomes active.
func (s *OrganizationService) Create(ctx context.Context, actor domain.ActiveContext, in CreateOrganizationInput) (domain.Organization, error) {
	log := slogx.FromContext(ctx)

	in.Name = strings.TrimSpace(in.Name)
	in.Slug = Slugify(in.Slug)
	if in.Slug == "" {
		in.Slug = Slugify(in.Name)
		if len(in.Slug) > maxSlugLength {
			in.Slug = strings.TrimRight(in.Slug[:maxSlugLength], "-")
		}
	}
	if err := validateInput(in); err != nil {
		log.Warn("invalid organization request", slogx.Err(err))
		return domain.Organization{}, err
	}
	if in.Slug == "" {
		return domain.Organization{}, fmt.Errorf("%w: name must contain a letter or digit", ErrInvalidInput)
	}

	now := s.Clock.now()
	org := domain.Organization{
		ID:        idx.NewString(),
		Name:      in.Name,
		Slug:      in.Slug,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Organizations().CreateOrganization(ctx, org); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateSlug
			}
			return fmt.Errorf("create organization: %w", err)
		}

		if err := tx.Members().CreateMember(ctx, domain.Member{
			ID:             idx.NewString(),
			UserID:         actor.UserID,
			OrganizationID: org.ID,
			Role:           domain.RoleOwner,
			CreatedAt:      now,
			UpdatedAt:      now,
		}); err != nil {
			return fmt.Errorf("create owner: %w", err)
		}

		if actor.SessionID == "" {
			return nil
		}
		sess, err := tx.Sessions().GetSessionByID(ctx, actor.SessionID)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if sess.ActiveOrganizationID == "" {
			if err := tx.Sessions().SetActiveOrganization(ctx, sess.ID, org.ID, now); err != nil {
				return fmt.Errorf("set active organization: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			log.Warn("organization creation rejected", slog.String("slug", in.Slug), slogx.Err(err))
		} else {
			log.Error("organization creation failed", slogx.Err(err))
		}
		return domain.Organization{}, err
	}

	log.Info("organization created",
		slog.String("organization_id", org.ID),
		slog.String("slug", org.Slug),
		slog.String("owner_id", actor.UserID),
	)
	return org, nil
}

// SetActive switches the actor's session to another organization the actor
// belongs to.
func (s *OrganizationService) SetActive(ctx context.Context, actor domain.ActiveContext, organizationID string) error {
	log := slogx.FromContext(ctx)

	organizationID = strings.TrimSpace(organizationID)
	if organizationID == "" {
		return fmt.Errorf("%w: organizationId is required", ErrInvalidInput)
	}

	if _, err := s.Store.Organizations().GetOrganizationByID(ctx, organizationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOrganizationNotFound
		}
		log.Error("failed to load organization", slogx.Err(err))
		return err
	}

	ok, err := s.Store.Members().IsOrganizationMember(ctx, actor.UserID, organizationID)
	if err != nil {
		log.Error("failed to check membership", slogx.Err(err))
		return err
	}
	if !ok {
		log.Warn("permission denied",
			slog.String("user_id", actor.UserID),
			slog.String("organization_id", organizationID),
		)
		return ErrForbidden
	}

	if err := s.Store.Sessions().SetActiveOrganization(ctx, actor.SessionID, organizationID, s.Clock.now()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnauthenticated
		}
		log.Error("failed to set active organization", slogx.Err(err))
		return err
	}

	log.Info("active organization changed",
		slog.String("session_id", actor.SessionID),
		slog.String("organization_id", organizationID),
	)
	return nil
}
