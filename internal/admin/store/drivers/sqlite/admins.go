package sqlite

import (
	"context"
	"time"

	"github.com/buffalosolar/admin-center/internal/admin/domain"
	"github.com/buffalosolar/admin-center/internal/admin/store"
)

const adminColumns = `id, email, name, role, status, invited_by, invited_at, accepted_at, created_at, updated_at`

type adminsRepo struct {
	db dbtx
}

func (r *adminsRepo) GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = ?`, email)
	a, err := scanAdmin(row)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) GetActiveAdminByEmail(ctx context.Context, email string) (domain.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE email = ? AND status = ?`,
		email, string(domain.AdminActive))
	a, err := scanAdmin(row)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}
	return a, nil
}

func (r *adminsRepo) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+adminColumns+` FROM admins ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []domain.Admin
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (`+adminColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.Email,
		a.Name,
		string(a.Role),
		string(a.Status),
		a.InvitedBy,
		a.InvitedAt,
		mapOptionalTime(a.AcceptedAt),
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *adminsRepo) ActivateAdmin(ctx context.Context, email, name string, acceptedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE admins SET status = ?, name = ?, accepted_at = ?, updated_at = ? WHERE email = ?`,
		string(domain.AdminActive), name, acceptedAt, acceptedAt, email)
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

func (r *adminsRepo) DeleteAdminByEmail(ctx context.Context, email string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE email = ?`, email)
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
