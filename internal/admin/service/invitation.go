package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/buffalosolar/admin-center/internal/admin/domain"
	"github.com/buffalosolar/admin-center/internal/admin/notify"
	"github.com/buffalosolar/admin-center/internal/admin/rbac"
	"github.com/buffalosolar/admin-center/internal/admin/store"
	"github.com/buffalosolar/admin-center/pkg/cryptox"
	"github.com/buffalosolar/admin-center/pkg/idx"
	"github.com/buffalosolar/admin-center/pkg/slogx"
)

var (
	ErrInvalidInvitationRequest = errors.New("invalid invitation request")
	ErrInvalidRole              = errors.New("invalid role")
	ErrAlreadyAdmin             = errors.New("user is already an admin")
	ErrDuplicateInvitation      = errors.New("user already has a pending invitation")
	ErrInvitationNotFound       = errors.New("invitation not found")
	ErrInvitationExpired        = errors.New("invitation expired")
	ErrInvitationAlreadyUsed    = errors.New("invitation has already been used")
)

// InvitationService owns the invitation lifecycle. It holds no state between
// calls; every operation is a fresh read-modify-write against the store.
type InvitationService struct {
	Store   store.Store
	Mailer  notify.Mailer
	BaseURL string // dashboard origin used to build acceptance links
}

// CreateResult is returned on successful invitation creation. Token is the
// raw invitation token, surfaced exactly once; only its fingerprint is
// stored.
type CreateResult struct {
	InvitationID string
	Token        string
	InviteLink   string
	EmailSent    bool
}

// Validation is the outcome of a successful token check, used by the
// acceptance UI to pre-fill and lock the email field and display the role.
type Validation struct {
	Email string
	Role  rbac.Role
}

// CreateInvitation issues a single-use invitation for an email and target
// role, paired with a pending admin record.
func (s *InvitationService) CreateInvitation(
	ctx context.Context,
	email string,
	invitedBy string,
	role rbac.Role,
) (CreateResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input. Role membership in the actor's invitable set is the
	// handler's concern; here we only require a real role.
	email = domain.CanonicalEmail(email)
	if email == "" || invitedBy == "" {
		return CreateResult{}, ErrInvalidInvitationRequest
	}
	if !role.Valid() {
		log.Warn("attempted to create invitation with unknown role",
			slog.String("role", string(role)),
		)
		return CreateResult{}, ErrInvalidRole
	}

	// 2. Reject emails that already resolve to an active admin.
	_, err := s.Store.Admins().GetActiveAdminByEmail(ctx, email)
	if err == nil {
		log.Warn("attempted to invite an existing admin", slog.String("email", email))
		return CreateResult{}, ErrAlreadyAdmin
	}
	if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check admin status", slog.Any("error", err))
		return CreateResult{}, err
	}

	// 3. Reject emails that already hold an unexpired, unused invitation.
	pending, err := s.HasPendingInvitation(ctx, email)
	if err != nil {
		return CreateResult{}, err
	}
	if pending != nil {
		log.Warn("attempted duplicate invitation", slog.String("email", email))
		return CreateResult{}, ErrDuplicateInvitation
	}

	// 4. Generate the opaque token and its storage fingerprint.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return CreateResult{}, err
	}
	fingerprint := cryptox.FingerprintToken(token)

	now := time.Now().UTC()
	invitation := domain.Invitation{
		ID:        idx.New().String(),
		Email:     email,
		TokenHash: fingerprint,
		Role:      role,
		InvitedBy: invitedBy,
		ExpiresAt: now.Add(domain.InvitationTTL),
		Used:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	admin := domain.Admin{
		ID:        idx.New().String(),
		Email:     email,
		Role:      role,
		Status:    domain.AdminPending,
		InvitedBy: invitedBy,
		InvitedAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 5. Write invitation and paired pending admin atomically. A leftover
	// pending record from an expired or revoked invite is replaced so the
	// one-record-per-email invariant holds.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Admins().DeleteAdminByEmail(ctx, email); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if err := tx.Admins().CreateAdmin(ctx, admin); err != nil {
			return err
		}
		return tx.Invitations().CreateInvitation(ctx, invitation)
	})
	if err != nil {
		log.Error("failed to create invitation",
			slog.String("email", email),
			slog.Any("error", err),
		)
		return CreateResult{}, err
	}

	result := CreateResult{
		InvitationID: invitation.ID,
		Token:        token,
		InviteLink:   fmt.Sprintf("%s/accept-invite/%s", s.BaseURL, token),
	}

	// 6. Dispatch the invitation email. Delivery failure is non-fatal: the
	// record is the source of truth and the link can be shared manually.
	mailErr := s.Mailer.SendInvitation(ctx, notify.Invitation{
		Recipient:  email,
		InviteLink: result.InviteLink,
		InvitedBy:  invitedBy,
		Role:       role,
		ExpiresIn:  expiresInCopy(domain.InvitationTTL),
	})
	if mailErr != nil {
		log.Warn("invitation email delivery failed, link must be shared manually",
			slog.String("email", email),
			slog.Any("error", mailErr),
		)
	}
	result.EmailSent = mailErr == nil

	log.Info("invitation created",
		slog.String("invitation_id", invitation.ID),
		slog.String("email", email),
		slog.String("role", string(role)),
		slog.String("invited_by", invitedBy),
		slog.Bool("email_sent", result.EmailSent),
		slog.Time("expires_at", invitation.ExpiresAt),
	)

	return result, nil
}

// HasPendingInvitation returns the unexpired, unused invitation for an
// email, or nil. Expired records are treated as absent but never deleted
// here; housekeeping removes them later.
func (s *InvitationService) HasPendingInvitation(ctx context.Context, email string) (*domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetUnusedInvitationByEmail(ctx, domain.CanonicalEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		log.Error("failed to check pending invitation", slog.Any("error", err))
		return nil, err
	}

	if inv.Expired(time.Now().UTC()) {
		return nil, nil
	}
	return &inv, nil
}

// ValidateInvitationToken checks a raw token and returns the email and role
// it was issued for. The three failure modes are distinguished because the
// remediation differs for the invitee.
func (s *InvitationService) ValidateInvitationToken(ctx context.Context, token string) (Validation, error) {
	log := slogx.FromContext(ctx)

	if token == "" {
		return Validation{}, ErrInvitationNotFound
	}

	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invitation validation attempted with unknown token")
			return Validation{}, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return Validation{}, err
	}

	if inv.Used {
		return Validation{}, ErrInvitationAlreadyUsed
	}
	if inv.Expired(time.Now().UTC()) {
		return Validation{}, ErrInvitationExpired
	}

	return Validation{Email: inv.Email, Role: inv.Role}, nil
}

// AcceptInvitation consumes a token and promotes the paired pending admin
// record to active. It performs the following steps:
//  1. Re-validates not-found / already-used / expired, since the token may
//     have been consumed or aged out since the UI called validate.
//  2. Marks the invitation used via a conditional update, so concurrent
//     acceptances cannot both win.
//  3. Promotes the paired admin record with the onboarding name.
func (s *InvitationService) AcceptInvitation(ctx context.Context, token, displayName string) error {
	log := slogx.FromContext(ctx)

	if token == "" || displayName == "" {
		return ErrInvalidInvitationRequest
	}

	// 1. Re-validate; this is a required re-check, not an optimization.
	fingerprint := cryptox.FingerprintToken(token)
	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, fingerprint)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invitation acceptance attempted with unknown token")
			return ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return err
	}
	if inv.Used {
		log.Warn("invitation acceptance attempted with used token",
			slog.String("invitation_id", inv.ID),
		)
		return ErrInvitationAlreadyUsed
	}
	now := time.Now().UTC()
	if inv.Expired(now) {
		log.Warn("invitation acceptance attempted with expired token",
			slog.String("invitation_id", inv.ID),
			slog.Time("expired_at", inv.ExpiresAt),
		)
		return ErrInvitationExpired
	}

	// 2+3. Consume the token and promote the admin record atomically.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().MarkInvitationUsed(ctx, inv.ID); err != nil {
			if errors.Is(err, store.ErrAlreadyUsed) {
				// A concurrent acceptance won the conditional update.
				return ErrInvitationAlreadyUsed
			}
			return err
		}

		err := tx.Admins().ActivateAdmin(ctx, inv.Email, displayName, now)
		if errors.Is(err, store.ErrNotFound) {
			// Orphaned invitation: the paired record was deleted after the
			// invite went out. Acceptance still succeeds; there is simply
			// nothing to promote.
			log.Warn("no pending admin record for accepted invitation",
				slog.String("invitation_id", inv.ID),
				slog.String("email", inv.Email),
			)
			return nil
		}
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInvitationAlreadyUsed) {
			return err
		}
		log.Error("failed to accept invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("email", inv.Email),
		slog.String("role", string(inv.Role)),
	)
	return nil
}

// DeleteInvitation revokes any invitation for the email, used or not. The
// paired admin record is removed with it while still pending; an activated
// record is left alone and goes through DeleteAdmin instead.
func (s *InvitationService) DeleteInvitation(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	email = domain.CanonicalEmail(email)
	if email == "" {
		return ErrInvalidInvitationRequest
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().DeleteInvitationByEmail(ctx, email); err != nil {
			return err
		}

		admin, err := tx.Admins().GetAdminByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		if admin.Status != domain.AdminPending {
			return nil
		}
		return tx.Admins().DeleteAdminByEmail(ctx, email)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to delete invitation", slog.String("email", email), slog.Any("error", err))
		return err
	}

	log.Info("invitation revoked", slog.String("email", email))
	return nil
}

// expiresInCopy renders the validity window for the email template.
func expiresInCopy(ttl time.Duration) string {
	days := int(ttl.Hours() / 24)
	if days >= 1 {
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
	return fmt.Sprintf("%d hours", int(ttl.Hours()))
}
