package http

import (
	"errors"
	"net/http"

	"github.com/buffalosolar/admin-center/internal/admin/domain"
	"github.com/buffalosolar/admin-center/internal/admin/service"
	"github.com/buffalosolar/admin-center/pkg/adminsdk"
	"github.com/buffalosolar/admin-center/pkg/httpx"
	"github.com/buffalosolar/admin-center/pkg/slogx"
)

type AdminsHandler struct {
	AdminService *service.AdminService
}

// HandleList godoc
//
//	@Summary		List Admins
//	@Description	Return every admin record, active and pending, for the admin management view.
//	@Tags			Admins
//	@Produce		json
//	@Success		200	{object}	adminsdk.ListAdminsResponse	"admins"
//	@Failure		401	{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	adminsdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admins [get].
func (h *AdminsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	admins, err := h.AdminService.ListAdmins(ctx)
	if err != nil {
		log.Error("failed to list admins", "err", err)
		adminsdk.ErrServerError.WriteError(w)
		return
	}

	records := make([]adminsdk.AdminRecord, 0, len(admins))
	for _, a := range admins {
		records = append(records, toAdminRecord(a))
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.ListAdminsResponse{Admins: records})
}

// HandleDelete godoc
//
//	@Summary		Delete Admin
//	@Description	Remove an admin record, revoking dashboard access. Admins cannot delete
//	@Description	their own account.
//	@Tags			Admins
//	@Produce		json
//	@Param			email	path	string	true	"Admin email"
//	@Success		204		"admin deleted"
//	@Failure		404		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/admins/{email} [delete].
func (h *AdminsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	email := r.PathValue("email")
	if email == "" {
		adminsdk.ErrAdminNotFound.WriteError(w)
		return
	}

	actorEmail := httpx.EmailFromCtx(ctx)

	if err := h.AdminService.DeleteAdmin(ctx, email, actorEmail); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminNotFound):
			adminsdk.ErrAdminNotFound.WriteError(w)
		case errors.Is(err, service.ErrSelfDeletion):
			adminsdk.ErrSelfDeletion.WriteError(w)
		case errors.Is(err, service.ErrInvalidRequest):
			adminsdk.ErrInvalidRequest.WriteError(w)
		default:
			log.Error("failed to delete admin", "err", err)
			adminsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toAdminRecord(a domain.Admin) adminsdk.AdminRecord {
	return adminsdk.AdminRecord{
		ID:         a.ID,
		Email:      a.Email,
		Name:       a.Name,
		Role:       string(a.Role),
		Status:     string(a.Status),
		InvitedBy:  a.InvitedBy,
		InvitedAt:  a.InvitedAt,
		AcceptedAt: a.AcceptedAt,
		CreatedAt:  a.CreatedAt,
	}
}
