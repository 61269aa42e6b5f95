package sqlite

import (
	"context"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
)

type organizationsRepo struct {
	db dbtx
}

const organizationColumns = `id, name, slug, created_at, updated_at`

func scanOrganization(row interface{ Scan(...any) error }) (domain.Organization, error) {
	var o domain.Organization
	err := row.Scan(&o.ID, &o.Name, &o.Slug, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, o domain.Organization) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO organizations (`+organizationColumns+`) VALUES (?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.Slug, utc(o.CreatedAt), utc(o.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error) {
	o, err := scanOrganization(r.db.QueryRowContext(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = ?`, id))
	return o, mapNotFound(err)
}

func (r *organizationsRepo) GetOrganizationBySlug(ctx context.Context, slug string) (domain.Organization, error) {
	o, err := scanOrganization(r.db.QueryRowContext(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE slug = ?`, slug))
	return o, mapNotFound(err)
}
