package admin_test

/*
 * End-to-end test for invitation email delivery. The service runs in-process
 * against an in-memory database; only the SMTP side is real, using a Mailpit
 * capture container. Requires Docker.
 */

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/buffalosolar/admin-center/internal/admin/notify"
	"github.com/buffalosolar/admin-center/internal/admin/rbac"
	"github.com/buffalosolar/admin-center/internal/admin/service"
	"github.com/buffalosolar/admin-center/internal/admin/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const mailpitImage = "axllent/mailpit:v1.20"

// mailpitMessage is the subset of Mailpit's message listing we assert on.
type mailpitMessage struct {
	ID      string `json:"ID"`
	Subject string `json:"Subject"`
	To      []struct {
		Address string `json:"Address"`
	} `json:"To"`
}

type mailpitListResponse struct {
	Total    int              `json:"total"`
	Messages []mailpitMessage `json:"messages"`
}

// setupMailpit starts a Mailpit container and returns the SMTP host/port and
// the HTTP API base URL.
func setupMailpit(t *testing.T) (string, int, string) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mailpitImage,
			ExposedPorts: []string{"1025/tcp", "8025/tcp"},
			WaitingFor:   wait.ForListeningPort("1025/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)

	smtpPort, err := container.MappedPort(ctx, "1025/tcp")
	require.NoError(t, err)

	apiPort, err := container.MappedPort(ctx, "8025/tcp")
	require.NoError(t, err)

	apiBase := fmt.Sprintf("http://%s:%s", host, apiPort.Port())
	return host, smtpPort.Int(), apiBase
}

func fetchMessages(t *testing.T, apiBase string) mailpitListResponse {
	t.Helper()

	resp, err := http.Get(apiBase + "/api/v1/messages")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list mailpitListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	return list
}

func fetchMessageHTML(t *testing.T, apiBase, id string) string {
	t.Helper()

	resp, err := http.Get(apiBase + "/api/v1/message/" + id)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var msg struct {
		HTML string `json:"HTML"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	return msg.HTML
}

func TestInvitationEmailDelivery(t *testing.T) {
	ctx := context.Background()

	smtpHost, smtpPort, apiBase := setupMailpit(t)

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	mailer, err := notify.NewSMTPMailer(notify.SMTPConfig{
		Host:     smtpHost,
		Port:     smtpPort,
		From:     "Buffalo Solar Admin <admin@buffalosolar.com>",
		Insecure: true, // Mailpit speaks plain SMTP
	})
	require.NoError(t, err)

	svc := &service.InvitationService{
		Store:   st,
		Mailer:  mailer,
		BaseURL: "https://admin.buffalosolar.com",
	}

	result, err := svc.CreateInvitation(ctx, "pat@buffalosolar.com", "lisa@buffalosolar.com", rbac.RoleAdmin)
	require.NoError(t, err)
	require.True(t, result.EmailSent)

	list := fetchMessages(t, apiBase)
	require.Equal(t, 1, list.Total)

	msg := list.Messages[0]
	require.Equal(t, "You've been invited to Buffalo Solar Admin Center", msg.Subject)
	require.Len(t, msg.To, 1)
	require.Equal(t, "pat@buffalosolar.com", msg.To[0].Address)

	// The delivered body carries the working acceptance link.
	html := fetchMessageHTML(t, apiBase, msg.ID)
	require.Contains(t, html, result.InviteLink)

	validation, err := svc.ValidateInvitationToken(ctx, result.Token)
	require.NoError(t, err)
	require.Equal(t, "pat@buffalosolar.com", validation.Email)
}
