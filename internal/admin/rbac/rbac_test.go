package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleHierarchy(t *testing.T) {
	t.Parallel()

	t.Run("levels are strictly ordered", func(t *testing.T) {
		require.Greater(t, RoleSuperAdmin.Level(), RoleAdmin.Level())
		require.Greater(t, RoleAdmin.Level(), RoleOperations.Level())
	})

	t.Run("unknown roles are invalid with level zero", func(t *testing.T) {
		require.False(t, Role("manager").Valid())
		require.Equal(t, 0, Role("manager").Level())
		require.False(t, Role("").Valid())
	})

	t.Run("actors manage only strictly lower roles", func(t *testing.T) {
		require.True(t, CanManageRole(RoleSuperAdmin, RoleAdmin))
		require.True(t, CanManageRole(RoleSuperAdmin, RoleOperations))
		require.True(t, CanManageRole(RoleAdmin, RoleOperations))

		require.False(t, CanManageRole(RoleAdmin, RoleAdmin))
		require.False(t, CanManageRole(RoleAdmin, RoleSuperAdmin))
		require.False(t, CanManageRole(RoleOperations, RoleOperations))
	})

	t.Run("invitable roles follow the hierarchy", func(t *testing.T) {
		require.Equal(t, []Role{RoleAdmin, RoleOperations}, InvitableRoles(RoleSuperAdmin))
		require.Equal(t, []Role{RoleOperations}, InvitableRoles(RoleAdmin))
		require.Empty(t, InvitableRoles(RoleOperations))
	})
}

func TestRolePermissions(t *testing.T) {
	t.Parallel()

	t.Run("both admin tiers hold the full catalog", func(t *testing.T) {
		require.Len(t, PermissionsForRole(RoleSuperAdmin), len(fullCatalog))
		require.Len(t, PermissionsForRole(RoleAdmin), len(fullCatalog))
	})

	t.Run("operations holds only customer service and profile", func(t *testing.T) {
		perms := PermissionsForRole(RoleOperations)
		require.ElementsMatch(t, []Permission{PermCustomerServiceView, PermProfileView}, perms)

		require.True(t, HasPermission(RoleOperations, PermCustomerServiceView))
		require.False(t, HasPermission(RoleOperations, PermDashboardView))
		require.False(t, HasPermission(RoleOperations, PermAdminsView))
		require.False(t, HasPermission(RoleOperations, PermAdminsInvite))
	})

	t.Run("unknown roles hold nothing", func(t *testing.T) {
		require.Empty(t, PermissionsForRole(Role("manager")))
		require.False(t, HasPermission(Role("manager"), PermProfileView))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		perms := PermissionsForRole(RoleOperations)
		perms[0] = PermAdminsDelete
		require.False(t, HasPermission(RoleOperations, PermAdminsDelete))
	})
}

func TestRouteAccess(t *testing.T) {
	t.Parallel()

	t.Run("operations cannot open admin management", func(t *testing.T) {
		require.False(t, CanAccessRoute(RoleOperations, "/settings/admins"))
		require.False(t, CanAccessRoute(RoleOperations, "/"))
		require.True(t, CanAccessRoute(RoleOperations, "/reports/customer-service"))
		require.True(t, CanAccessRoute(RoleOperations, "/profile"))
	})

	t.Run("admins open every mapped route", func(t *testing.T) {
		for route := range routePermissions {
			require.True(t, CanAccessRoute(RoleAdmin, route), "route %s", route)
			require.True(t, CanAccessRoute(RoleSuperAdmin, route), "route %s", route)
		}
	})

	t.Run("unmapped routes are open to everyone", func(t *testing.T) {
		require.True(t, CanAccessRoute(RoleOperations, "/help"))
		require.True(t, CanAccessRoute(Role("manager"), "/help"))
	})

	t.Run("landing pages", func(t *testing.T) {
		require.Equal(t, "/", DefaultLandingPage(RoleSuperAdmin))
		require.Equal(t, "/", DefaultLandingPage(RoleAdmin))
		require.Equal(t, "/reports/customer-service", DefaultLandingPage(RoleOperations))
		require.Equal(t, "/reports/customer-service", DefaultLandingPage(Role("manager")))
	})
}

func TestSidebarVisibility(t *testing.T) {
	t.Parallel()

	t.Run("primary items gray out for operations", func(t *testing.T) {
		for _, item := range SidebarItems {
			vis := SidebarVisibility(RoleOperations, item)
			if item.Permission == PermCustomerServiceView {
				require.Equal(t, VisibilityVisible, vis, "item %s", item.Name)
				continue
			}
			require.Equal(t, VisibilityGrayed, vis, "item %s", item.Name)
		}
	})

	t.Run("bottom admin items hide rather than gray", func(t *testing.T) {
		for _, item := range SidebarBottomItems {
			vis := SidebarVisibility(RoleOperations, item)
			switch item.Permission {
			case PermProfileView:
				require.Equal(t, VisibilityVisible, vis, "item %s", item.Name)
			default:
				require.Equal(t, item.NoAccess, vis, "item %s", item.Name)
				require.Equal(t, VisibilityHidden, vis, "item %s", item.Name)
			}
		}
	})

	t.Run("admins see everything", func(t *testing.T) {
		for _, item := range append(SidebarItems, SidebarBottomItems...) {
			require.Equal(t, VisibilityVisible, SidebarVisibility(RoleAdmin, item))
		}
	})
}
