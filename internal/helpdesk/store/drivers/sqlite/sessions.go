package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/domain"
)

type sessionsRepo struct {
	db dbtx
}

const sessionColumns = `id, user_id, active_organization_id, expires_at, revoked_at, created_at, updated_at`

func scanSession(row interface{ Scan(...any) error }) (domain.Session, error) {
	var (
		s       domain.Session
		orgID   sql.NullString
		revoked sql.NullTime
	)
	err := row.Scan(&s.ID, &s.UserID, &orgID, &s.ExpiresAt, &revoked, &s.CreatedAt, &s.UpdatedAt)
	s.ActiveOrganizationID = orgID.String
	s.RevokedAt = timePtr(revoked)
	return s, err
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (`+sessionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, nullString(s.ActiveOrganizationID), utc(s.ExpiresAt),
		nullTime(s.RevokedAt), utc(s.CreatedAt), utc(s.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id string) (domain.Session, error) {
	s, err := scanSession(r.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id))
	return s, mapNotFound(err)
}

// Ties on created_at fall back to the id.
func (r *sessionsRepo) GetLatestSessionForUser(ctx context.Context, userID string) (domain.Session, error) {
	s, err := scanSession(r.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`, userID))
	return s, mapNotFound(err)
}

func (r *sessionsRepo) SetActiveOrganization(ctx context.Context, sessionID, organizationID string, at time.Time) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE sessions SET active_organization_id = ?, updated_at = ? WHERE id = ?`,
		nullString(organizationID), utc(at), sessionID,
	))
}

func (r *sessionsRepo) RevokeSession(ctx context.Context, sessionID string, at time.Time) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE sessions SET revoked_at = COALESCE(revoked_at, ?), updated_at = ? WHERE id = ?`,
		utc(at), utc(at), sessionID,
	))
}

func (r *sessionsRepo) DeleteStaleSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)`,
		utc(cutoff), utc(cutoff),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
