package domain

import (
	"strings"
	"time"

	"github.com/buffalosolar/admin-center/internal/admin/rbac"
)

// AdminStatus is the lifecycle state of an Admin record.
type AdminStatus string

const (
	// AdminPending is set when an invitation is issued and not yet accepted.
	AdminPending AdminStatus = "pending"
	// AdminActive is set exactly once, when the matching invitation is accepted.
	AdminActive AdminStatus = "active"
)

// Admin represents a person with dashboard access. Exactly one record exists
// per canonical email.
type Admin struct {
	ID         string
	Email      string // canonical (lowercase)
	Name       string // set at onboarding, empty while pending
	Role       rbac.Role
	Status     AdminStatus
	InvitedBy  string // email of the inviter
	InvitedAt  time.Time
	AcceptedAt *time.Time // nil while pending
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CanonicalEmail lowercases and trims an email address. Every comparison and
// every stored email goes through this first.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
