package sqlite

import (
	"context"
	"time"

	"github.com/buffalosolar/admin-center/internal/admin/domain"
	"github.com/buffalosolar/admin-center/internal/admin/store"
)

const invitationColumns = `id, email, token_hash, role, invited_by, expires_at, used, created_at, updated_at`

type invitationsRepo struct {
	db dbtx
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invitations (`+invitationColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID,
		inv.Email,
		inv.TokenHash,
		string(inv.Role),
		inv.InvitedBy,
		inv.ExpiresAt,
		inv.Used,
		inv.CreatedAt,
		inv.UpdatedAt,
	)
	return err
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token_hash = ?`, hash)
	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) GetUnusedInvitationByEmail(ctx context.Context, email string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE email = ? AND used = 0 ORDER BY created_at DESC LIMIT 1`,
		email)
	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

// MarkInvitationUsed is a conditional update: the WHERE used = 0 guard plus
// the rows-affected check means only one of two racing acceptances wins.
func (r *invitationsRepo) MarkInvitationUsed(ctx context.Context, invitationID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitations SET used = 1, updated_at = ? WHERE id = ? AND used = 0`,
		time.Now().UTC(), invitationID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either the row is gone or it was consumed concurrently; find out
		// which so the caller can report the right failure.
		var used bool
		row := r.db.QueryRowContext(ctx, `SELECT used FROM invitations WHERE id = ?`, invitationID)
		if scanErr := row.Scan(&used); scanErr != nil {
			return mapNotFound(scanErr)
		}
		if used {
			return store.ErrAlreadyUsed
		}
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) DeleteInvitationByEmail(ctx context.Context, email string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invitations WHERE email = ?`, email)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) DeleteExpiredInvitations(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invitations WHERE expires_at < ?`, time.Now().UTC())
	return err
}
