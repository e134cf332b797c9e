package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/buffalosolar/admin-center/internal/admin/service"
	"github.com/buffalosolar/admin-center/pkg/adminsdk"
	"github.com/buffalosolar/admin-center/pkg/httpx"
	"github.com/buffalosolar/admin-center/pkg/slogx"
)

type InvitationValidateHandler struct {
	InvitationService *service.InvitationService
}

// ServeHTTP godoc
//
//	@Summary		Validate Invitation Token
//	@Description	Check whether an invitation token is still usable. Returns the email and role
//	@Description	it was issued for so the acceptance form can pre-fill and lock the email field.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string								true	"Raw invitation token"
//	@Success		200		{object}	adminsdk.ValidateInvitationResponse	"valid, email, role"
//	@Failure		404		{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		410		{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	adminsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/invitations/{token} [get].
func (h *InvitationValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := r.PathValue("token")
	if token == "" {
		adminsdk.ErrInvitationNotFound.WriteError(w)
		return
	}

	validation, err := h.InvitationService.ValidateInvitationToken(ctx, token)
	if err != nil {
		writeInvitationTokenError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.ValidateInvitationResponse{
		Valid: true,
		Email: validation.Email,
		Role:  string(validation.Role),
	})
}

// writeInvitationTokenError maps token lifecycle errors to responses. Shared
// by the validate and accept endpoints so the two report states identically.
func writeInvitationTokenError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvitationNotFound):
		adminsdk.ErrInvitationNotFound.WriteError(w)
	case errors.Is(err, service.ErrInvitationExpired):
		adminsdk.ErrInvitationExpired.WriteError(w)
	case errors.Is(err, service.ErrInvitationAlreadyUsed):
		adminsdk.ErrInvitationUsed.WriteError(w)
	default:
		log.Error("invitation token check failed", "err", err)
		adminsdk.ErrServerError.WriteError(w)
	}
}
