package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/buffalosolar/admin-center/internal/admin/rbac"
	"github.com/buffalosolar/admin-center/internal/admin/service"
	"github.com/buffalosolar/admin-center/pkg/adminsdk"
	"github.com/buffalosolar/admin-center/pkg/httpx"
	"github.com/buffalosolar/admin-center/pkg/slogx"
)

type InvitationCreateHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Create Admin Invitation
//	@Description	Issue a single-use invitation for an email and target role. A pending admin
//	@Description	record is created alongside it and the invite link is emailed to the recipient.
//	@Description	The raw token appears in the response exactly once and cannot be retrieved again.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.CreateInvitationRequest	true	"Invitation request"
//	@Success		201		{object}	adminsdk.CreateInvitationResponse	"invitation_id, invite_link, email_sent"
//	@Failure		400		{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Parse JSON request body
	var req adminsdk.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ErrorResponse{
			Error:            adminsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	if req.Email == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ErrorResponse{
			Error:            adminsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "email is required",
		})
		return
	}
	if req.Role == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ErrorResponse{
			Error:            adminsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "role is required",
		})
		return
	}

	// The hierarchy check is the handler's job: the guard only proves the
	// caller may invite at all, not that they may hand out this role.
	actorRole := roleFromCtx(ctx)
	targetRole := rbac.Role(req.Role)
	if targetRole.Valid() && !rbac.CanManageRole(actorRole, targetRole) {
		httpx.WriteJSON(w, http.StatusForbidden, adminsdk.ErrorResponse{
			Error:            adminsdk.ErrorCodeAccessDenied,
			ErrorDescription: "You cannot invite someone at or above your own role",
		})
		return
	}

	invitedBy := httpx.EmailFromCtx(ctx)

	result, err := h.InvitationService.CreateInvitation(ctx, req.Email, invitedBy, targetRole)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInvitationRequest):
			httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ErrorResponse{
				Error:            adminsdk.ErrorCodeInvalidRequest,
				ErrorDescription: "Invalid invitation parameters",
			})
		case errors.Is(err, service.ErrInvalidRole):
			httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ErrorResponse{
				Error:            adminsdk.ErrorCodeInvalidRequest,
				ErrorDescription: "Unknown role",
			})
		case errors.Is(err, service.ErrAlreadyAdmin):
			adminsdk.ErrAlreadyAdmin.WriteError(w)
		case errors.Is(err, service.ErrDuplicateInvitation):
			adminsdk.ErrDuplicateInvitation.WriteError(w)
		default:
			log.Error("failed to create invitation", "err", err)
			adminsdk.ErrServerError.WriteError(w)
		}
		return
	}

	message := "Invitation created and email sent"
	if !result.EmailSent {
		message = "Invitation created but the email could not be sent; share the link manually"
	}

	httpx.WriteJSON(w, http.StatusCreated, adminsdk.CreateInvitationResponse{
		InvitationID: result.InvitationID,
		InviteLink:   result.InviteLink,
		EmailSent:    result.EmailSent,
		Message:      message,
	})
}
