package rbac

// Permission is an atomic, named capability gating one route or action.
type Permission string

const (
	PermDashboardView       Permission = "dashboard.view"
	PermFormsView           Permission = "forms.view"
	PermAnalyticsView       Permission = "analytics.view"
	PermAnnouncementsView   Permission = "announcements.view"
	PermFilesView           Permission = "files.view"
	PermReportsView         Permission = "reports.view"
	PermCustomerServiceView Permission = "reports.customer-service.view"
	PermToolsView           Permission = "tools.view"
	PermSettingsView        Permission = "settings.view"
	PermAdminsView          Permission = "settings.admins.view"
	PermAdminsInvite        Permission = "settings.admins.invite"
	PermAdminsDelete        Permission = "settings.admins.delete"
	PermProfileView         Permission = "profile.view"
)

// permissionDescriptions is the full catalog with human-readable labels,
// surfaced through the API for the invite and settings UIs.
var permissionDescriptions = map[Permission]string{
	PermDashboardView:       "View dashboard",
	PermFormsView:           "View form submissions",
	PermAnalyticsView:       "View analytics",
	PermAnnouncementsView:   "View announcements",
	PermFilesView:           "View files",
	PermReportsView:         "View reports",
	PermCustomerServiceView: "View customer service reports",
	PermToolsView:           "View tools",
	PermSettingsView:        "View settings",
	PermAdminsView:          "View admin management",
	PermAdminsInvite:        "Invite new admins",
	PermAdminsDelete:        "Delete admins",
	PermProfileView:         "View profile",
}

// fullCatalog is every permission, in catalog order. Both admin tiers hold
// the complete set; the split between super_admin and admin is hierarchy
// (who may invite whom), not capability.
var fullCatalog = []Permission{
	PermDashboardView,
	PermFormsView,
	PermAnalyticsView,
	PermAnnouncementsView,
	PermFilesView,
	PermReportsView,
	PermCustomerServiceView,
	PermToolsView,
	PermSettingsView,
	PermAdminsView,
	PermAdminsInvite,
	PermAdminsDelete,
	PermProfileView,
}

var rolePermissions = map[Role][]Permission{
	RoleSuperAdmin: fullCatalog,
	RoleAdmin:      fullCatalog,
	RoleOperations: {
		PermCustomerServiceView,
		PermProfileView,
	},
}

// Describe returns the human-readable label for a permission, or the raw key
// if it is not in the catalog.
func (p Permission) Describe() string {
	if d, ok := permissionDescriptions[p]; ok {
		return d
	}
	return string(p)
}

// HasPermission reports whether the role's fixed permission set contains p.
// Unknown roles hold nothing.
func HasPermission(role Role, p Permission) bool {
	for _, held := range rolePermissions[role] {
		if held == p {
			return true
		}
	}
	return false
}

// PermissionsForRole returns the role's fixed permission set in catalog
// order. The returned slice is a copy; callers may not grow a role's grant.
func PermissionsForRole(role Role) []Permission {
	perms := rolePermissions[role]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}
