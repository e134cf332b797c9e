package store

import (
	"context"
	"errors"
	"time"

	"github.com/buffalosolar/admin-center/internal/admin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	// ErrAlreadyUsed is returned by MarkInvitationUsed when the invitation
	// was consumed by a concurrent acceptance. Callers must treat it the
	// same as finding a used invitation up front.
	ErrAlreadyUsed = errors.New("store: invitation already used")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable.
type Store interface {
	Admins() Admins
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to do multi-step writes (e.g. invitation acceptance).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Admins interface {
	// GetAdminByEmail returns the record for a canonical email in any status.
	GetAdminByEmail(ctx context.Context, email string) (domain.Admin, error)

	// GetActiveAdminByEmail returns the record only if status is active.
	GetActiveAdminByEmail(ctx context.Context, email string) (domain.Admin, error)

	// ListAdmins returns all admin records ordered by creation date
	// (newest first).
	ListAdmins(ctx context.Context) ([]domain.Admin, error)

	// CreateAdmin inserts a new record (id is provided by app via ULID).
	CreateAdmin(ctx context.Context, a domain.Admin) error

	// ActivateAdmin promotes a pending record: sets status=active, the
	// onboarding name, accepted_at, and bumps updated_at.
	ActivateAdmin(ctx context.Context, email, name string, acceptedAt time.Time) error

	// DeleteAdminByEmail removes the record in either status.
	DeleteAdminByEmail(ctx context.Context, email string) error
}

type Invitations interface {
	// CreateInvitation writes a new invitation (token_hash is the SHA-256
	// fingerprint of the opaque token).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByTokenHash returns an invitation by fingerprint
	// regardless of used/expired state; the service layer decides which
	// failure to surface.
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// GetUnusedInvitationByEmail returns the unused invitation for a
	// canonical email, if any. Expiry is the caller's concern.
	GetUnusedInvitationByEmail(ctx context.Context, email string) (domain.Invitation, error)

	// MarkInvitationUsed flips used=0 to used=1 as a single conditional
	// update. Returns ErrAlreadyUsed if the row was already consumed, so
	// two concurrent acceptances cannot both succeed.
	MarkInvitationUsed(ctx context.Context, invitationID string) error

	// DeleteInvitationByEmail revokes any invitation for the email.
	DeleteInvitationByEmail(ctx context.Context, email string) error

	// DeleteExpiredInvitations is housekeeping.
	DeleteExpiredInvitations(ctx context.Context) error
}
