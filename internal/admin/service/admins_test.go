package service

import (
	"context"
	"testing"
	"time"

	"github.com/buffalosolar/admin-center/internal/admin/domain"
	"github.com/buffalosolar/admin-center/internal/admin/rbac"
	"github.com/buffalosolar/admin-center/internal/admin/store/drivers/sqlite"
	"github.com/buffalosolar/admin-center/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newAdminService(t *testing.T) (*AdminService, *sqlite.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	svc := &AdminService{
		Store:     st,
		Allowlist: rbac.NewAllowlist(),
	}
	return svc, st
}

func seedAdmin(t *testing.T, st *sqlite.Store, email string, role rbac.Role) {
	t.Helper()

	now := time.Now().UTC()
	acceptedAt := now
	require.NoError(t, st.Admins().CreateAdmin(context.Background(), domain.Admin{
		ID:         idx.New().String(),
		Email:      email,
		Name:       "Seeded",
		Role:       role,
		Status:     domain.AdminActive,
		InvitedBy:  "lisa@buffalosolar.com",
		InvitedAt:  now,
		AcceptedAt: &acceptedAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}))
}

func TestEffectiveRole(t *testing.T) {
	ctx := context.Background()

	t.Run("persisted role wins for regular admins", func(t *testing.T) {
		svc, st := newAdminService(t)
		seedAdmin(t, st, "ops@buffalosolar.com", rbac.RoleOperations)
		seedAdmin(t, st, "root@buffalosolar.com", rbac.RoleSuperAdmin)

		require.Equal(t, rbac.RoleOperations, svc.EffectiveRole(ctx, "ops@buffalosolar.com"))
		require.Equal(t, rbac.RoleSuperAdmin, svc.EffectiveRole(ctx, "root@buffalosolar.com"))
	})

	t.Run("allowlisted email is super admin regardless of record", func(t *testing.T) {
		svc, st := newAdminService(t)
		seedAdmin(t, st, "lisa@buffalosolar.com", rbac.RoleOperations)

		require.Equal(t, rbac.RoleSuperAdmin, svc.EffectiveRole(ctx, "lisa@buffalosolar.com"))
		require.Equal(t, rbac.RoleSuperAdmin, svc.EffectiveRole(ctx, "LISA@buffalosolar.com"))
	})

	t.Run("missing record defaults to admin", func(t *testing.T) {
		svc, _ := newAdminService(t)
		require.Equal(t, rbac.RoleAdmin, svc.EffectiveRole(ctx, "pat@buffalosolar.com"))
	})

	t.Run("empty email resolves to operations", func(t *testing.T) {
		svc, _ := newAdminService(t)
		require.Equal(t, rbac.RoleOperations, svc.EffectiveRole(ctx, ""))
	})

	t.Run("store failure fails closed to operations", func(t *testing.T) {
		svc, st := newAdminService(t)
		require.NoError(t, st.Close())

		require.Equal(t, rbac.RoleOperations, svc.EffectiveRole(ctx, "pat@buffalosolar.com"))
	})

	t.Run("break glass resolves even when the store is down", func(t *testing.T) {
		svc, st := newAdminService(t)
		require.NoError(t, st.Close())

		require.Equal(t, rbac.RoleSuperAdmin, svc.EffectiveRole(ctx, "lisa@buffalosolar.com"))
	})
}

func TestIsAdminEmail(t *testing.T) {
	ctx := context.Background()
	svc, st := newAdminService(t)

	seedAdmin(t, st, "pat@buffalosolar.com", rbac.RoleAdmin)

	ok, err := svc.IsAdminEmail(ctx, "PAT@buffalosolar.com")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.IsAdminEmail(ctx, "ghost@buffalosolar.com")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDeleteAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the record", func(t *testing.T) {
		svc, st := newAdminService(t)
		seedAdmin(t, st, "pat@buffalosolar.com", rbac.RoleAdmin)

		require.NoError(t, svc.DeleteAdmin(ctx, "PAT@buffalosolar.com", "lisa@buffalosolar.com"))

		ok, err := svc.IsAdminEmail(ctx, "pat@buffalosolar.com")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("refuses self deletion", func(t *testing.T) {
		svc, st := newAdminService(t)
		seedAdmin(t, st, "pat@buffalosolar.com", rbac.RoleAdmin)

		err := svc.DeleteAdmin(ctx, "pat@buffalosolar.com", "Pat@BuffaloSolar.com")
		require.ErrorIs(t, err, ErrSelfDeletion)
	})

	t.Run("missing admin reports not found", func(t *testing.T) {
		svc, _ := newAdminService(t)
		err := svc.DeleteAdmin(ctx, "ghost@buffalosolar.com", "lisa@buffalosolar.com")
		require.ErrorIs(t, err, ErrAdminNotFound)
	})

	t.Run("empty email rejected", func(t *testing.T) {
		svc, _ := newAdminService(t)
		err := svc.DeleteAdmin(ctx, "  ", "lisa@buffalosolar.com")
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}
