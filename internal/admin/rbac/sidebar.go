package rbac

// Visibility is how a sidebar entry renders for a role that may or may not
// hold the entry's permission.
type Visibility string

const (
	// VisibilityVisible renders the entry normally.
	VisibilityVisible Visibility = "visible"
	// VisibilityGrayed renders a disabled entry with an explanatory tooltip,
	// so users understand the feature exists but is restricted to them.
	VisibilityGrayed Visibility = "grayed"
	// VisibilityHidden removes the entry entirely, used for administrative
	// surface area that low-privilege roles should not learn about.
	VisibilityHidden Visibility = "hidden"
)

// SidebarItem is one navigation entry with its permission and the fallback
// used when the permission is missing.
type SidebarItem struct {
	Name       string
	Route      string
	Permission Permission
	NoAccess   Visibility // grayed or hidden
}

// SidebarItems is the primary navigation. All of it degrades to grayed.
var SidebarItems = []SidebarItem{
	{Name: "Dashboard", Route: "/", Permission: PermDashboardView, NoAccess: VisibilityGrayed},
	{Name: "Forms", Route: "/forms", Permission: PermFormsView, NoAccess: VisibilityGrayed},
	{Name: "Announcements", Route: "/announcements", Permission: PermAnnouncementsView, NoAccess: VisibilityGrayed},
	{Name: "Analytics", Route: "/analytics", Permission: PermAnalyticsView, NoAccess: VisibilityGrayed},
	{Name: "Files", Route: "/files", Permission: PermFilesView, NoAccess: VisibilityGrayed},
	{Name: "Reports", Route: "/reports", Permission: PermReportsView, NoAccess: VisibilityGrayed},
	{Name: "Customer Service", Route: "/reports/customer-service", Permission: PermCustomerServiceView, NoAccess: VisibilityGrayed},
	{Name: "Tools", Route: "/tools", Permission: PermToolsView, NoAccess: VisibilityGrayed},
}

// SidebarBottomItems is the settings block pinned to the bottom. The admin
// management entries hide entirely rather than gray out.
var SidebarBottomItems = []SidebarItem{
	{Name: "Settings", Route: "/settings", Permission: PermSettingsView, NoAccess: VisibilityHidden},
	{Name: "Admin Management", Route: "/settings/admins", Permission: PermAdminsView, NoAccess: VisibilityHidden},
	{Name: "Profile", Route: "/profile", Permission: PermProfileView, NoAccess: VisibilityGrayed},
}

// SidebarVisibility returns how one sidebar item renders for a role. Pure
// and side-effect-free; safe to call on every render.
func SidebarVisibility(role Role, item SidebarItem) Visibility {
	if HasPermission(role, item.Permission) {
		return VisibilityVisible
	}
	return item.NoAccess
}
