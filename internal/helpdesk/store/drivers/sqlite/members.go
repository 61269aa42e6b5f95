package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
)

type membersRepo struct {
	db dbtx
}

const memberColumns = `m.id, m.user_id, m.organization_id, m.team_id, m.role, m.created_at, m.updated_at`

func scanMember(row interface{ Scan(...any) error }, extra ...any) (domain.Member, error) {
	var (
		m      domain.Member
		teamID sql.NullString
		role   string
	)
	dest := append([]any{&m.ID, &m.UserID, &m.OrganizationID, &teamID, &role, &m.CreatedAt, &m.UpdatedAt}, extra...)
	err := row.Scan(dest...)
	m.TeamID = teamID.String
	m.Role = domain.Role(role)
	return m, err
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO members (id, user_id, organization_id, team_id, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.OrganizationID, nullString(m.TeamID), string(m.Role), utc(m.CreatedAt), utc(m.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *membersRepo) GetMemberByID(ctx context.Context, id string) (domain.Member, error) {
	m, err := scanMember(r.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members m WHERE m.id = ?`, id))
	return m, mapNotFound(err)
}

// team_id IS ? matches NULL when teamID is empty and equality otherwise.
func (r *membersRepo) GetMemberInScope(ctx context.Context, userID, organizationID, teamID string) (domain.Member, error) {
	m, err := scanMember(r.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members m
		 WHERE m.user_id = ? AND m.organization_id = ? AND m.team_id IS ?`,
		userID, organizationID, nullString(teamID)))
	return m, mapNotFound(err)
}

func (r *membersRepo) IsOrganizationMember(ctx context.Context, userID, organizationID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM members WHERE user_id = ? AND organization_id = ?)`,
		userID, organizationID,
	).Scan(&exists)
	return exists, err
}

func (r *membersRepo) CountOwners(ctx context.Context, organizationID, teamID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM members WHERE organization_id = ? AND team_id IS ? AND role = ?`,
		organizationID, nullString(teamID), string(domain.RoleOwner),
	).Scan(&n)
	return n, err
}

func (r *membersRepo) UpdateMemberRole(ctx context.Context, id string, role domain.Role, at time.Time) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE members SET role = ?, updated_at = ? WHERE id = ?`,
		string(role), utc(at), id,
	))
}

func (r *membersRepo) DeleteMember(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM members WHERE id = ?`, id))
}

func (r *membersRepo) ListMembers(ctx context.Context, organizationID, teamID string) ([]domain.MemberWithUser, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+memberColumns+`, u.name, u.email
		 FROM members m JOIN users u ON u.id = m.user_id
		 WHERE m.organization_id = ? AND m.team_id IS ?
		 ORDER BY m.created_at, m.id`,
		organizationID, nullString(teamID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.MemberWithUser{}
	for rows.Next() {
		var mu domain.MemberWithUser
		m, err := scanMember(rows, &mu.UserName, &mu.UserEmail)
		if err != nil {
			return nil, err
		}
		mu.Member = m
		out = append(out, mu)
	}
	return out, rows.Err()
}
