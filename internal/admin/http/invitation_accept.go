package http

import (
	"encoding/json"
	"net/http"

	"github.com/buffalosolar/admin-center/internal/admin/service"
	"github.com/buffalosolar/admin-center/pkg/adminsdk"
	"github.com/buffalosolar/admin-center/pkg/httpx"
	"github.com/buffalosolar/admin-center/pkg/slogx"
)

type InvitationAcceptHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Accept Admin Invitation
//	@Description	Redeem an invitation token, completing onboarding. The paired pending admin
//	@Description	record becomes active and the token is consumed. Each token redeems at most once,
//	@Description	even under concurrent acceptance attempts.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string								true	"Raw invitation token"
//	@Param			request	body		adminsdk.AcceptInvitationRequest	true	"Acceptance details"
//	@Success		200		{object}	adminsdk.AcceptInvitationResponse	"email"
//	@Failure		400		{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		410		{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/invitations/{token}/accept [post].
func (h *InvitationAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := r.PathValue("token")
	if token == "" {
		adminsdk.ErrInvitationNotFound.WriteError(w)
		return
	}

	var req adminsdk.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ErrorResponse{
			Error:            adminsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "Invalid JSON body",
		})
		return
	}
	if req.Name == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, adminsdk.ErrorResponse{
			Error:            adminsdk.ErrorCodeInvalidRequest,
			ErrorDescription: "name is required",
		})
		return
	}

	// Look up the token first so the response can echo the email the
	// invitation was issued for.
	validation, err := h.InvitationService.ValidateInvitationToken(ctx, token)
	if err != nil {
		writeInvitationTokenError(w, log, err)
		return
	}

	if err := h.InvitationService.AcceptInvitation(ctx, token, req.Name); err != nil {
		writeInvitationTokenError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.AcceptInvitationResponse{
		Email: validation.Email,
	})
}
