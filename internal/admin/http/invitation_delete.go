package http

import (
	"errors"
	"net/http"

	"github.com/buffalosolar/admin-center/internal/admin/service"
	"github.com/buffalosolar/admin-center/pkg/adminsdk"
	"github.com/buffalosolar/admin-center/pkg/slogx"
)

type InvitationDeleteHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Revoke Admin Invitation
//	@Description	Delete the pending invitation for an email together with its pending admin
//	@Description	record. The invite link stops working immediately.
//	@Tags			Invitations
//	@Produce		json
//	@Param			email	path	string	true	"Invitee email"
//	@Success		204		"invitation revoked"
//	@Failure		404		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	adminsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{email} [delete].
func (h *InvitationDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	email := r.PathValue("email")
	if email == "" {
		adminsdk.ErrInvitationNotFound.WriteError(w)
		return
	}

	if err := h.InvitationService.DeleteInvitation(ctx, email); err != nil {
		switch {
		case errors.Is(err, service.ErrInvitationNotFound):
			adminsdk.ErrInvitationNotFound.WriteError(w)
		default:
			log.Error("failed to revoke invitation", "err", err)
			adminsdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
