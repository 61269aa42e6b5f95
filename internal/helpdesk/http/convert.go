package http

import (
	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
)

func toUser(u domain.User) helpdesksdk.User {
	return helpdesksdk.User{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func toSession(s domain.Session) helpdesksdk.Session {
	return helpdesksdk.Session{
		ID:                   s.ID,
		UserID:               s.UserID,
		ActiveOrganizationID: s.ActiveOrganizationID,
		ExpiresAt:            s.ExpiresAt,
		CreatedAt:            s.CreatedAt,
	}
}

func toOrganization(o domain.Organization) helpdesksdk.Organization {
	return helpdesksdk.Organization{ID: o.ID, Name: o.Name, Slug: o.Slug, CreatedAt: o.CreatedAt}
}

func toTeam(t domain.Team) helpdesksdk.Team {
	return helpdesksdk.Team{ID: t.ID, OrganizationID: t.OrganizationID, Name: t.Name, CreatedAt: t.CreatedAt}
}

func toMember(m domain.Member) helpdesksdk.Member {
	return helpdesksdk.Member{
		ID:             m.ID,
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		TeamID:         m.TeamID,
		Role:           m.Role.String(),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toMembers(ms []domain.MemberWithUser) []helpdesksdk.Member {
	out := make([]helpdesksdk.Member, 0, len(ms))
	for _, m := range ms {
		sm := toMember(m.Member)
		sm.UserName = m.UserName
		sm.UserEmail = m.UserEmail
		out = append(out, sm)
	}
	return out
}

func toInvitation(inv domain.Invitation) helpdesksdk.Invitation {
	return helpdesksdk.Invitation{
		ID:             inv.ID,
		Code:           inv.Code,
		Email:          inv.Email,
		OrganizationID: inv.OrganizationID,
		TeamID:         inv.TeamID,
		Role:           inv.Role.String(),
		InviterID:      inv.InviterID,
		Status:         string(inv.Status),
		ExpiresAt:      inv.ExpiresAt,
		AcceptedBy:     inv.AcceptedBy,
		AcceptedAt:     inv.AcceptedAt,
		CreatedAt:      inv.CreatedAt,
	}
}

func toInvitationInfo(d domain.InvitationDetails) helpdesksdk.InvitationInfo {
	info := helpdesksdk.InvitationInfo{
		Code:      d.Code,
		Role:      d.Role.String(),
		Status:    string(d.Status),
		ExpiresAt: d.ExpiresAt,
		Organization: helpdesksdk.OrganizationRef{
			ID:   d.OrganizationID,
			Name: d.OrganizationName,
			Slug: d.OrganizationSlug,
		},
		Inviter: helpdesksdk.InviterRef{Name: d.InviterName, Email: d.InviterEmail},
	}
	if d.TeamID != "" {
		info.Team = &helpdesksdk.TeamRef{ID: d.TeamID, Name: d.TeamName}
	}
	return info
}
