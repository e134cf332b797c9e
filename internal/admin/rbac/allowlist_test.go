package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllowlist(t *testing.T) {
	t.Parallel()

	t.Run("compiled-in entries always present", func(t *testing.T) {
		a := NewAllowlist()
		require.True(t, a.Contains("lisa@buffalosolar.com"))
		require.True(t, a.Contains("  LISA@BuffaloSolar.com  "))
		require.False(t, a.Contains("mallory@buffalosolar.com"))
	})

	t.Run("extra entries append without replacing", func(t *testing.T) {
		a := NewAllowlist("oncall@buffalosolar.com", " ", "")
		require.True(t, a.Contains("lisa@buffalosolar.com"))
		require.True(t, a.Contains("ONCALL@buffalosolar.com"))
	})
}

func TestAllowlistEffectiveRole(t *testing.T) {
	t.Parallel()

	a := NewAllowlist()

	t.Run("empty email resolves to operations", func(t *testing.T) {
		require.Equal(t, RoleOperations, a.EffectiveRole("", RoleSuperAdmin))
		require.Equal(t, RoleOperations, a.EffectiveRole("   ", RoleSuperAdmin))
	})

	t.Run("allowlisted email overrides any persisted role", func(t *testing.T) {
		require.Equal(t, RoleSuperAdmin, a.EffectiveRole("lisa@buffalosolar.com", RoleOperations))
		require.Equal(t, RoleSuperAdmin, a.EffectiveRole("Lisa@BuffaloSolar.com", ""))
	})

	t.Run("valid persisted role wins for everyone else", func(t *testing.T) {
		require.Equal(t, RoleOperations, a.EffectiveRole("pat@buffalosolar.com", RoleOperations))
		require.Equal(t, RoleSuperAdmin, a.EffectiveRole("pat@buffalosolar.com", RoleSuperAdmin))
	})

	t.Run("missing or unknown persisted role defaults to admin", func(t *testing.T) {
		require.Equal(t, RoleAdmin, a.EffectiveRole("pat@buffalosolar.com", ""))
		require.Equal(t, RoleAdmin, a.EffectiveRole("pat@buffalosolar.com", Role("manager")))
	})
}
