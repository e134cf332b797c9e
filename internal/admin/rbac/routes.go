package rbac

// routePermissions maps dashboard routes to the permission required to view
// them. Routes not listed here are implicitly accessible to everyone.
var routePermissions = map[string]Permission{
	"/":                         PermDashboardView,
	"/forms":                    PermFormsView,
	"/analytics":                PermAnalyticsView,
	"/announcements":            PermAnnouncementsView,
	"/files":                    PermFilesView,
	"/reports":                  PermReportsView,
	"/reports/customer-service": PermCustomerServiceView,
	"/tools":                    PermToolsView,
	"/settings":                 PermSettingsView,
	"/settings/admins":          PermAdminsView,
	"/profile":                  PermProfileView,
}

// defaultLandingPage is where each role lands after sign-in. Operations
// users skip the dashboard they cannot see and go straight to their reports.
var defaultLandingPage = map[Role]string{
	RoleSuperAdmin: "/",
	RoleAdmin:      "/",
	RoleOperations: "/reports/customer-service",
}

// CanAccessRoute reports whether the role may view the given route. Unlisted
// routes require no permission.
func CanAccessRoute(role Role, route string) bool {
	perm, ok := routePermissions[route]
	if !ok {
		return true
	}
	return HasPermission(role, perm)
}

// RoutePermission returns the permission guarding a route, if any.
func RoutePermission(route string) (Permission, bool) {
	perm, ok := routePermissions[route]
	return perm, ok
}

// DefaultLandingPage returns the post-sign-in destination for a role.
// Unknown roles get the most restricted destination.
func DefaultLandingPage(role Role) string {
	if page, ok := defaultLandingPage[role]; ok {
		return page
	}
	return defaultLandingPage[RoleOperations]
}
