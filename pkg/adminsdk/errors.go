package adminsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/buffalosolar/admin-center/pkg/httpx"
)

// Error codes used by the admin access service. The invitation codes mirror
// the lifecycle states a token can be in.
const (
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeInvalidToken         = "invalid_token"
	ErrorCodeAccessDenied         = "access_denied"
	ErrorCodeServerError          = "server_error"
	ErrorCodeAlreadyAdmin         = "already_admin"
	ErrorCodeDuplicateInvitation  = "duplicate_invitation"
	ErrorCodeInvitationNotFound   = "invitation_not_found"
	ErrorCodeInvitationExpired    = "invitation_expired"
	ErrorCodeInvitationUsed       = "invitation_already_used"
	ErrorCodeAdminNotFound        = "admin_not_found"
	ErrorCodeSelfDeletion         = "self_deletion"
	ErrorCodeRateLimited          = "rate_limited"
)

// APIError is the error payload the service returns on non-2xx responses.
// It implements the error interface and is shared by the HTTP handlers (to
// write responses) and the SDK client (to surface them to callers).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest is returned when the request body is malformed or a
	// required field is missing or invalid.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidToken is returned when the bearer token is missing, invalid
	// or expired.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token is missing, invalid or expired",
	}

	// ErrAccessDenied is returned when the caller's role lacks the required
	// permission.
	ErrAccessDenied = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeAccessDenied,
		Description: "access denied",
	}

	// ErrServerError is returned when an unexpected condition prevented the
	// service from fulfilling the request.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}

	// ErrAlreadyAdmin is returned when inviting an email that already belongs
	// to an active admin.
	ErrAlreadyAdmin = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeAlreadyAdmin,
		Description: "this email already belongs to an active admin",
	}

	// ErrDuplicateInvitation is returned when a live invitation already
	// exists for the email.
	ErrDuplicateInvitation = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeDuplicateInvitation,
		Description: "a pending invitation already exists for this email",
	}

	// ErrInvitationNotFound is returned for an unknown invitation token.
	ErrInvitationNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeInvitationNotFound,
		Description: "invitation not found",
	}

	// ErrInvitationExpired is returned for a token past its expiry.
	ErrInvitationExpired = &APIError{
		StatusCode:  http.StatusGone,
		Code:        ErrorCodeInvitationExpired,
		Description: "this invitation has expired",
	}

	// ErrInvitationUsed is returned for a token that was already accepted.
	ErrInvitationUsed = &APIError{
		StatusCode:  http.StatusGone,
		Code:        ErrorCodeInvitationUsed,
		Description: "this invitation has already been used",
	}

	// ErrAdminNotFound is returned when deleting an admin that does not exist.
	ErrAdminNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeAdminNotFound,
		Description: "admin not found",
	}

	// ErrSelfDeletion is returned when an admin tries to delete their own account.
	ErrSelfDeletion = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeSelfDeletion,
		Description: "you cannot delete your own account",
	}

	// ErrMethodNotAllowed is returned when the HTTP method is not allowed.
	ErrMethodNotAllowed = &APIError{
		StatusCode:  http.StatusMethodNotAllowed,
		Code:        ErrorCodeInvalidRequest,
		Description: "method not allowed",
	}
)

// NewAPIError creates an APIError with a custom description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
