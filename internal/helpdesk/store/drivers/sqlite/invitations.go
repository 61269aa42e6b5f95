package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `i.id, i.code, i.email, i.organization_id, i.team_id, i.role, i.inviter_id,
	i.status, i.expires_at, i.accepted_by, i.accepted_at, i.created_at, i.updated_at`

func scanInvitation(row interface{ Scan(...any) error }, extra ...any) (domain.Invitation, error) {
	var (
		inv        domain.Invitation
		email      sql.NullString
		teamID     sql.NullString
		role       string
		status     string
		acceptedBy sql.NullString
		acceptedAt sql.NullTime
	)
	dest := append([]any{
		&inv.ID, &inv.Code, &email, &inv.OrganizationID, &teamID, &role, &inv.InviterID,
		&status, &inv.ExpiresAt, &acceptedBy, &acceptedAt, &inv.CreatedAt, &inv.UpdatedAt,
	}, extra...)
	err := row.Scan(dest...)

	inv.Email = email.String
	inv.TeamID = teamID.String
	inv.Role = domain.Role(role)
	inv.Status = domain.InvitationStatus(status)
	inv.AcceptedBy = acceptedBy.String
	inv.AcceptedAt = timePtr(acceptedAt)
	return inv, err
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	status := inv.Status
	if status == "" {
		status = domain.InvitationPending
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invitations (id, code, email, organization_id, team_id, role, inviter_id,
		     status, expires_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Code, nullString(inv.Email), inv.OrganizationID, nullString(inv.TeamID),
		string(inv.Role), inv.InviterID, string(status), utc(inv.ExpiresAt),
		utc(inv.CreatedAt), utc(inv.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *invitationsRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM invitations WHERE code = ?)`, code,
	).Scan(&exists)
	return exists, err
}

func (r *invitationsRepo) GetInvitationByCode(ctx context.Context, code string) (domain.Invitation, error) {
	inv, err := scanInvitation(r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations i WHERE i.code = ?`, code))
	return inv, mapNotFound(err)
}

func (r *invitationsRepo) GetInvitationDetailsByCode(ctx context.Context, code string) (domain.InvitationDetails, error) {
	var (
		d        domain.InvitationDetails
		teamName sql.NullString
	)
	inv, err := scanInvitation(r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+`, o.name, o.slug, t.name, u.name, u.email
		 FROM invitations i
		 JOIN organizations o ON o.id = i.organization_id
		 LEFT JOIN teams t ON t.id = i.team_id
		 JOIN users u ON u.id = i.inviter_id
		 WHERE i.code = ?`, code),
		&d.OrganizationName, &d.OrganizationSlug, &teamName, &d.InviterName, &d.InviterEmail,
	)
	if err != nil {
		return domain.InvitationDetails{}, mapNotFound(err)
	}
	d.Invitation = inv
	d.TeamName = teamName.String
	return d, nil
}

func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, id, userID string, at time.Time) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE invitations
		 SET status = ?, accepted_by = ?, accepted_at = ?, updated_at = ?
		 WHERE id = ? AND status = ?`,
		string(domain.InvitationAccepted), userID, utc(at), utc(at),
		id, string(domain.InvitationPending),
	))
}
