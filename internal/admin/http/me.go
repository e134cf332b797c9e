package http

import (
	"net/http"

	"github.com/buffalosolar/admin-center/internal/admin/rbac"
	"github.com/buffalosolar/admin-center/internal/admin/service"
	"github.com/buffalosolar/admin-center/pkg/adminsdk"
	"github.com/buffalosolar/admin-center/pkg/httpx"
)

// MeHandler answers the frontend's authorization questions: what role the
// caller holds, which permissions that grants, what the sidebar should look
// like and whether a given route may be rendered. Everything is resolved
// fresh per request; role changes apply on the next call.
type MeHandler struct {
	AdminService *service.AdminService
}

// HandleMe godoc
//
//	@Summary		Caller Authorization State
//	@Description	Resolve the caller's effective role with its permissions, landing page and
//	@Description	the roles they may hand out in invitations.
//	@Tags			Me
//	@Produce		json
//	@Success		200	{object}	adminsdk.MeResponse		"email, role, permissions, landing_page"
//	@Failure		401	{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *MeHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := httpx.EmailFromCtx(ctx)
	if email == "" {
		adminsdk.ErrInvalidToken.WriteError(w)
		return
	}

	role := h.AdminService.EffectiveRole(ctx, email)

	perms := rbac.PermissionsForRole(role)
	permNames := make([]string, 0, len(perms))
	for _, p := range perms {
		permNames = append(permNames, string(p))
	}

	invitable := rbac.InvitableRoles(role)
	invitableNames := make([]string, 0, len(invitable))
	for _, role := range invitable {
		invitableNames = append(invitableNames, string(role))
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.MeResponse{
		Email:          email,
		Role:           string(role),
		RoleDisplay:    role.DisplayName(),
		Permissions:    permNames,
		LandingPage:    rbac.DefaultLandingPage(role),
		InvitableRoles: invitableNames,
	})
}

// HandleSidebar godoc
//
//	@Summary		Sidebar Visibility
//	@Description	Return the per-item navigation visibility for the caller's role. Items the
//	@Description	role cannot use come back grayed or hidden per item configuration.
//	@Tags			Me
//	@Produce		json
//	@Success		200	{object}	adminsdk.SidebarResponse	"items, bottom_items"
//	@Failure		401	{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/me/sidebar [get].
func (h *MeHandler) HandleSidebar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := httpx.EmailFromCtx(ctx)
	if email == "" {
		adminsdk.ErrInvalidToken.WriteError(w)
		return
	}

	role := h.AdminService.EffectiveRole(ctx, email)

	httpx.WriteJSON(w, http.StatusOK, adminsdk.SidebarResponse{
		Items:       sidebarEntries(role, rbac.SidebarItems),
		BottomItems: sidebarEntries(role, rbac.SidebarBottomItems),
	})
}

// HandleRoutes godoc
//
//	@Summary		Route Access Check
//	@Description	Answer whether the caller may access the route given in the path query
//	@Description	parameter. Routes without a permission mapping are open to everyone.
//	@Tags			Me
//	@Produce		json
//	@Param			path	query		string						true	"Route path, e.g. /settings/admins"
//	@Success		200		{object}	adminsdk.RouteAccessResponse	"path, allowed"
//	@Failure		400		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	adminsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/me/routes [get].
func (h *MeHandler) HandleRoutes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := httpx.EmailFromCtx(ctx)
	if email == "" {
		adminsdk.ErrInvalidToken.WriteError(w)
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ErrorResponse{
			Error:            adminsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "path query parameter is required",
		})
		return
	}

	role := h.AdminService.EffectiveRole(ctx, email)

	httpx.WriteJSON(w, http.StatusOK, adminsdk.RouteAccessResponse{
		Path:    path,
		Allowed: rbac.CanAccessRoute(role, path),
	})
}

func sidebarEntries(role rbac.Role, items []rbac.SidebarItem) []adminsdk.SidebarEntry {
	entries := make([]adminsdk.SidebarEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, adminsdk.SidebarEntry{
			Name:       item.Name,
			Route:      item.Route,
			Visibility: string(rbac.SidebarVisibility(role, item)),
		})
	}
	return entries
}
