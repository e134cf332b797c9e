// Package adminsdk holds the wire types of the admin access service API and
// a small typed client. The dashboard BFF and the e2e tests consume it.
package adminsdk

import "time"

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g. "invalid_request",
	// "duplicate_invitation", "invitation_expired")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// CreateInvitationRequest asks for a new invitation for an email and role.
type CreateInvitationRequest struct {
	// Email of the invitee; canonicalized to lowercase by the service
	Email string `json:"email"`

	// Role the invitee will hold once active (super_admin, admin, operations)
	Role string `json:"role"`
}

// CreateInvitationResponse carries the shareable acceptance link. The raw
// token appears here exactly once and is never retrievable again.
type CreateInvitationResponse struct {
	InvitationID string `json:"invitation_id"`
	InviteLink   string `json:"invite_link"`

	// EmailSent reports whether the invitation email was delivered. A false
	// value is a warning, not an error: the link can be shared manually.
	EmailSent bool   `json:"email_sent"`
	Message   string `json:"message"`
}

// ValidateInvitationResponse is returned for a still-valid token so the
// acceptance form can pre-fill and lock the email field. Role is display
// only; the authoritative value stays server-side.
type ValidateInvitationResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AcceptInvitationRequest completes onboarding with the invitee's name.
type AcceptInvitationRequest struct {
	Name string `json:"name"`
}

// AcceptInvitationResponse confirms the promotion.
type AcceptInvitationResponse struct {
	Email string `json:"email"`
}

// AdminRecord is one row in the admin management view.
type AdminRecord struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name,omitempty"`
	Role       string     `json:"role"`
	Status     string     `json:"status"`
	InvitedBy  string     `json:"invited_by"`
	InvitedAt  time.Time  `json:"invited_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ListAdminsResponse wraps the admin list.
type ListAdminsResponse struct {
	Admins []AdminRecord `json:"admins"`
}

// MeResponse describes the caller's authorization state, resolved fresh on
// every call.
type MeResponse struct {
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	RoleDisplay string   `json:"role_display"`
	Permissions []string `json:"permissions"`

	// LandingPage is where the frontend should send the caller after
	// sign-in.
	LandingPage string `json:"landing_page"`

	// InvitableRoles are the roles the caller may hand out.
	InvitableRoles []string `json:"invitable_roles"`
}

// SidebarEntry is the visibility decision for one navigation item.
type SidebarEntry struct {
	Name       string `json:"name"`
	Route      string `json:"route"`
	Visibility string `json:"visibility"` // visible, grayed or hidden
}

// SidebarResponse groups the primary and bottom navigation decisions.
type SidebarResponse struct {
	Items       []SidebarEntry `json:"items"`
	BottomItems []SidebarEntry `json:"bottom_items"`
}

// RouteAccessResponse answers "may I render this route".
type RouteAccessResponse struct {
	Path    string `json:"path"`
	Allowed bool   `json:"allowed"`
}

// HealthChecks reports per-dependency status in readiness probes.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
