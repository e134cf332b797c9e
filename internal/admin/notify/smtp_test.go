package notify

import (
	"bytes"
	"testing"

	"github.com/buffalosolar/admin-center/internal/admin/rbac"
	"github.com/stretchr/testify/require"
)

func TestInvitationTemplateRendering(t *testing.T) {
	t.Parallel()

	m, err := NewSMTPMailer(SMTPConfig{
		Host: "localhost",
		Port: 1025,
		From: "Buffalo Solar Admin <admin@buffalosolar.com>",
	})
	require.NoError(t, err)

	var body bytes.Buffer
	err = m.tmpl.Execute(&body, Invitation{
		Recipient:  "pat@buffalosolar.com",
		InviteLink: "https://admin.buffalosolar.com/accept-invite/tok123",
		InvitedBy:  "lisa@buffalosolar.com",
		Role:       rbac.RoleAdmin,
		ExpiresIn:  "7 days",
	})
	require.NoError(t, err)

	html := body.String()
	require.Contains(t, html, "pat@buffalosolar.com")
	require.Contains(t, html, "lisa@buffalosolar.com")
	require.Contains(t, html, "https://admin.buffalosolar.com/accept-invite/tok123")
	require.Contains(t, html, "expire in 7 days")
	require.Contains(t, html, rbac.RoleAdmin.DisplayName())
}
