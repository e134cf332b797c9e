package domain

import (
	"time"

	"github.com/buffalosolar/admin-center/internal/admin/rbac"
)

// InvitationTTL is the single validity window for invitation tokens. The data
// layer and the email copy both derive from this constant so the two can never
// drift apart.
const InvitationTTL = 7 * 24 * time.Hour

// Invitation is a single-use, time-bounded consent-to-join token for one
// canonical email. The raw token is returned once at creation and only its
// SHA-256 fingerprint is stored.
type Invitation struct {
	ID        string
	Email     string // canonical (lowercase)
	TokenHash string
	Role      rbac.Role // role the invitee will hold once active
	InvitedBy string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the invitation is past its expiry at the given time.
// Expiry is enforced at read time, never by mutating the stored record.
func (inv Invitation) Expired(now time.Time) bool {
	return inv.ExpiresAt.Before(now)
}
