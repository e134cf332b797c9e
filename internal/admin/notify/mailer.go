// Package notify dispatches invitation emails. Delivery is a best-effort
// side effect: the invitation record is the source of truth and a failed
// send never rolls one back.
package notify

import (
	"context"

	"github.com/buffalosolar/admin-center/internal/admin/rbac"
)

// Invitation carries everything the email template needs.
type Invitation struct {
	Recipient  string
	InviteLink string
	InvitedBy  string
	Role       rbac.Role
	ExpiresIn  string // human copy, e.g. "7 days"
}

// Mailer delivers an invitation notification and reports success or failure.
type Mailer interface {
	SendInvitation(ctx context.Context, inv Invitation) error
}

// Noop is a Mailer that delivers nothing. Used when SMTP is not configured;
// invitation links are then shared manually out of the response payload.
type Noop struct{}

func (Noop) SendInvitation(ctx context.Context, inv Invitation) error { return nil }
