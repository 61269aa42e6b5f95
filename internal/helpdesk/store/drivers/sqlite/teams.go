package sqlite

import (
	"context"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
)

type teamsRepo struct {
	db dbtx
}

const teamColumns = `id, organization_id, name, created_at, updated_at`

func scanTeam(row interface{ Scan(...any) error }) (domain.Team, error) {
	var t domain.Team
	err := row.Scan(&t.ID, &t.OrganizationID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *teamsRepo) CreateTeam(ctx context.Context, t domain.Team) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO teams (`+teamColumns+`) VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.OrganizationID, t.Name, utc(t.CreatedAt), utc(t.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *teamsRepo) GetTeamByID(ctx context.Context, id string) (domain.Team, error) {
	t, err := scanTeam(r.db.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE id = ?`, id))
	return t, mapNotFound(err)
}

func (r *teamsRepo) GetTeamByName(ctx context.Context, organizationID, name string) (domain.Team, error) {
	t, err := scanTeam(r.db.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE organization_id = ? AND name = ?`, organizationID, name))
	return t, mapNotFound(err)
}
