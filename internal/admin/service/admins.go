package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/buffalosolar/admin-center/internal/admin/domain"
	"github.com/buffalosolar/admin-center/internal/admin/rbac"
	"github.com/buffalosolar/admin-center/internal/admin/store"
	"github.com/buffalosolar/admin-center/pkg/slogx"
)

var (
	ErrAdminNotFound  = errors.New("admin not found")
	ErrSelfDeletion   = errors.New("admins cannot delete themselves")
	ErrInvalidRequest = errors.New("invalid request")
)

// AdminService manages admin records and resolves effective roles.
type AdminService struct {
	Store     store.Store
	Allowlist rbac.Allowlist
}

// EffectiveRole resolves what the authenticated email may do. Store failures
// fail closed: the caller gets the lowest-privilege role rather than a
// silently elevated one.
func (s *AdminService) EffectiveRole(ctx context.Context, email string) rbac.Role {
	log := slogx.FromContext(ctx)

	email = domain.CanonicalEmail(email)
	if email == "" {
		return rbac.RoleOperations
	}

	// The allowlist override does not need the store at all; break-glass
	// identities resolve even when the database is unreachable.
	if s.Allowlist.Contains(email) {
		return rbac.RoleSuperAdmin
	}

	var persisted rbac.Role
	admin, err := s.Store.Admins().GetAdminByEmail(ctx, email)
	switch {
	case err == nil:
		persisted = admin.Role
	case errors.Is(err, store.ErrNotFound):
		// No record; the resolver's legacy default applies.
	default:
		log.Error("role lookup failed, failing closed to operations",
			slog.String("email", email),
			slog.Any("error", err),
		)
		return rbac.RoleOperations
	}

	return s.Allowlist.EffectiveRole(email, persisted)
}

// IsAdminEmail reports whether the email belongs to an active admin.
func (s *AdminService) IsAdminEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.Store.Admins().GetActiveAdminByEmail(ctx, domain.CanonicalEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListAdmins returns every admin record, pending and active.
func (s *AdminService) ListAdmins(ctx context.Context) ([]domain.Admin, error) {
	return s.Store.Admins().ListAdmins(ctx)
}

// DeleteAdmin removes an admin record in either status. The actor's email is
// required so self-deletion can be refused; locking yourself out of the
// dashboard is never a valid operation.
func (s *AdminService) DeleteAdmin(ctx context.Context, email, actorEmail string) error {
	log := slogx.FromContext(ctx)

	email = domain.CanonicalEmail(email)
	if email == "" {
		return ErrInvalidRequest
	}
	if email == domain.CanonicalEmail(actorEmail) {
		log.Warn("self-deletion refused", slog.String("email", email))
		return ErrSelfDeletion
	}

	err := s.Store.Admins().DeleteAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAdminNotFound
		}
		log.Error("failed to delete admin", slog.String("email", email), slog.Any("error", err))
		return err
	}

	log.Info("admin deleted",
		slog.String("email", email),
		slog.String("deleted_by", domain.CanonicalEmail(actorEmail)),
	)
	return nil
}
