package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/buffalosolar/admin-center/internal/admin/domain"
	"github.com/buffalosolar/admin-center/internal/admin/rbac"
	"github.com/buffalosolar/admin-center/internal/admin/store"
	"github.com/buffalosolar/admin-center/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func testAdmin(email string, status domain.AdminStatus) domain.Admin {
	now := time.Now().UTC()
	return domain.Admin{
		ID:        idx.New().String(),
		Email:     email,
		Role:      rbac.RoleAdmin,
		Status:    status,
		InvitedBy: "lisa@buffalosolar.com",
		InvitedAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testInvitation(email string, expiresAt time.Time) domain.Invitation {
	now := time.Now().UTC()
	return domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		TokenHash: "hash-" + idx.New().String(),
		Role:      rbac.RoleAdmin,
		InvitedBy: "lisa@buffalosolar.com",
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestAdminsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	admin := testAdmin("pat@buffalosolar.com", domain.AdminPending)
	require.NoError(t, st.Admins().CreateAdmin(ctx, admin))

	t.Run("fetch by email", func(t *testing.T) {
		got, err := st.Admins().GetAdminByEmail(ctx, admin.Email)
		require.NoError(t, err)
		require.Equal(t, admin.ID, got.ID)
		require.Equal(t, domain.AdminPending, got.Status)
		require.Nil(t, got.AcceptedAt)
	})

	t.Run("pending admin is not active", func(t *testing.T) {
		_, err := st.Admins().GetActiveAdminByEmail(ctx, admin.Email)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		dup := testAdmin(admin.Email, domain.AdminPending)
		require.Error(t, st.Admins().CreateAdmin(ctx, dup))
	})

	t.Run("activation promotes with name and timestamp", func(t *testing.T) {
		acceptedAt := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, st.Admins().ActivateAdmin(ctx, admin.Email, "Pat Doe", acceptedAt))

		got, err := st.Admins().GetActiveAdminByEmail(ctx, admin.Email)
		require.NoError(t, err)
		require.Equal(t, "Pat Doe", got.Name)
		require.Equal(t, domain.AdminActive, got.Status)
		require.NotNil(t, got.AcceptedAt)
	})

	t.Run("list returns all records", func(t *testing.T) {
		other := testAdmin("sam@buffalosolar.com", domain.AdminActive)
		require.NoError(t, st.Admins().CreateAdmin(ctx, other))

		admins, err := st.Admins().ListAdmins(ctx)
		require.NoError(t, err)
		require.Len(t, admins, 2)
	})

	t.Run("delete removes the record", func(t *testing.T) {
		require.NoError(t, st.Admins().DeleteAdminByEmail(ctx, admin.Email))
		_, err := st.Admins().GetAdminByEmail(ctx, admin.Email)
		require.ErrorIs(t, err, store.ErrNotFound)

		require.ErrorIs(t, st.Admins().DeleteAdminByEmail(ctx, admin.Email), store.ErrNotFound)
	})

	t.Run("activating a missing admin reports not found", func(t *testing.T) {
		err := st.Admins().ActivateAdmin(ctx, "ghost@buffalosolar.com", "Ghost", time.Now().UTC())
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestInvitationsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	inv := testInvitation("pat@buffalosolar.com", time.Now().UTC().Add(7*24*time.Hour))
	require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

	t.Run("fetch by token hash", func(t *testing.T) {
		got, err := st.Invitations().GetInvitationByTokenHash(ctx, inv.TokenHash)
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)
		require.False(t, got.Used)
	})

	t.Run("unknown hash reports not found", func(t *testing.T) {
		_, err := st.Invitations().GetInvitationByTokenHash(ctx, "no-such-hash")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unused lookup by email", func(t *testing.T) {
		got, err := st.Invitations().GetUnusedInvitationByEmail(ctx, inv.Email)
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)
	})

	t.Run("duplicate token hash rejected", func(t *testing.T) {
		dup := testInvitation("other@buffalosolar.com", time.Now().UTC().Add(time.Hour))
		dup.TokenHash = inv.TokenHash
		require.Error(t, st.Invitations().CreateInvitation(ctx, dup))
	})
}

func TestMarkInvitationUsedIsSingleUse(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	inv := testInvitation("pat@buffalosolar.com", time.Now().UTC().Add(time.Hour))
	require.NoError(t, st.Invitations().CreateInvitation(ctx, inv))

	// First consumption wins.
	require.NoError(t, st.Invitations().MarkInvitationUsed(ctx, inv.ID))

	got, err := st.Invitations().GetInvitationByTokenHash(ctx, inv.TokenHash)
	require.NoError(t, err)
	require.True(t, got.Used)

	// Second consumption loses the conditional update.
	require.ErrorIs(t, st.Invitations().MarkInvitationUsed(ctx, inv.ID), store.ErrAlreadyUsed)

	// A missing row is reported as such, not as consumed.
	require.ErrorIs(t, st.Invitations().MarkInvitationUsed(ctx, "no-such-id"), store.ErrNotFound)

	// Used invitations drop out of the unused-by-email lookup.
	_, err = st.Invitations().GetUnusedInvitationByEmail(ctx, inv.Email)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteExpiredInvitations(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	now := time.Now().UTC()
	stale := testInvitation("old@buffalosolar.com", now.Add(-time.Hour))
	live := testInvitation("new@buffalosolar.com", now.Add(time.Hour))
	require.NoError(t, st.Invitations().CreateInvitation(ctx, stale))
	require.NoError(t, st.Invitations().CreateInvitation(ctx, live))

	require.NoError(t, st.Invitations().DeleteExpiredInvitations(ctx))

	_, err := st.Invitations().GetInvitationByTokenHash(ctx, stale.TokenHash)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Invitations().GetInvitationByTokenHash(ctx, live.TokenHash)
	require.NoError(t, err)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	boom := store.ErrAlreadyExists
	err := st.WithTx(ctx, func(tx store.Tx) error {
		admin := testAdmin("pat@buffalosolar.com", domain.AdminPending)
		if err := tx.Admins().CreateAdmin(ctx, admin); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = st.Admins().GetAdminByEmail(ctx, "pat@buffalosolar.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}
