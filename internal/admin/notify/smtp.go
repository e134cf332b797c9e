package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds mail submission settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // e.g. "Buffalo Solar Admin <admin@buffalosolar.com>"
	// Insecure disables TLS enforcement, for local capture servers in tests.
	Insecure bool
}

// SMTPMailer delivers invitation emails over authenticated SMTP.
type SMTPMailer struct {
	cfg  SMTPConfig
	tmpl *template.Template
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	tmpl, err := template.New("invitation").Parse(invitationTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse invitation template: %w", err)
	}
	return &SMTPMailer{cfg: cfg, tmpl: tmpl}, nil
}

func (m *SMTPMailer) SendInvitation(ctx context.Context, inv Invitation) error {
	var body bytes.Buffer
	if err := m.tmpl.Execute(&body, inv); err != nil {
		return fmt.Errorf("render invitation email: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(inv.Recipient); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject("You've been invited to Buffalo Solar Admin Center")
	msg.SetBodyString(mail.TypeTextHTML, body.String())

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}
	if m.cfg.Insecure {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send invitation email: %w", err)
	}
	return nil
}

// invitationTemplate mirrors the dashboard's branding. The expiry copy comes
// from the caller so it always matches the data layer's validity window.
const invitationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="text-align: center; padding: 30px 0; border-bottom: 2px solid #f0f0f0;">
    <div style="font-size: 24px; font-weight: bold; color: #FF6B35;">&#9728;&#65039; Buffalo Solar</div>
    <p style="color: #666; margin-top: 8px;">Admin Center</p>
  </div>
  <div style="padding: 40px 0;">
    <h2>You've Been Invited!</h2>
    <p><strong>{{.InvitedBy}}</strong> has invited you to join the Buffalo Solar Admin Center as <strong>{{.Role.DisplayName}}</strong>.</p>
    <div style="background-color: #f8f9fa; border-left: 4px solid #FF6B35; padding: 16px; margin: 20px 0; border-radius: 4px;">
      <p style="margin: 0;"><strong>Your invitation email:</strong></p>
      <p style="margin: 8px 0 0 0; color: #FF6B35; font-weight: 600;">{{.Recipient}}</p>
    </div>
    <p>Click the button below to accept your invitation and create your account:</p>
    <div style="text-align: center;">
      <a href="{{.InviteLink}}" style="display: inline-block; padding: 14px 32px; background-color: #FF6B35; color: white; text-decoration: none; border-radius: 8px; font-weight: 600; margin: 20px 0;">Accept Invitation</a>
    </div>
    <p style="font-size: 14px; color: #666; margin-top: 32px;">
      Or copy and paste this link into your browser:<br>
      <a href="{{.InviteLink}}" style="color: #FF6B35; word-break: break-all;">{{.InviteLink}}</a>
    </p>
    <p style="font-size: 14px; color: #999; margin-top: 24px;">
      <strong>Note:</strong> This invitation will expire in {{.ExpiresIn}}.
    </p>
  </div>
  <div style="text-align: center; padding-top: 30px; border-top: 2px solid #f0f0f0; color: #666; font-size: 14px;">
    <p>Buffalo Solar Admin Center</p>
    <p style="font-size: 12px;">If you didn't expect this invitation, you can safely ignore this email.</p>
  </div>
</body>
</html>`
