package adminsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a typed client for the admin access service.
//
// Public operations (invitation validation and acceptance, health probes)
// work without a token. Set Token, or use WithToken, before calling the
// authenticated operations.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token is the bearer token attached to authenticated requests.
	Token string
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a shallow copy of the client that authenticates with the
// given bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.Token = token
	return &clone
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an HTTP request, attaching the bearer token when set.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// decodeJSON decodes a JSON response into target, or returns a typed
// *APIError when the status code does not match.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// checkStatusNoContent returns a typed error if the response status is not 204 No Content.
func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}

	return nil
}

// ============================================================================
// Public operations
// ============================================================================

// ValidateInvitation checks whether an invitation token is still usable and
// returns the email and role it was issued for.
func (c *Client) ValidateInvitation(ctx context.Context, token string) (*ValidateInvitationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/invitations/"+url.PathEscape(token), nil)
	if err != nil {
		return nil, err
	}

	var out ValidateInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation redeems an invitation token, activating the invited admin.
func (c *Client) AcceptInvitation(ctx context.Context, token, name string) (*AcceptInvitationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invitations/"+url.PathEscape(token)+"/accept",
		AcceptInvitationRequest{Name: name})
	if err != nil {
		return nil, err
	}

	var out AcceptInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Livez checks whether the service process is up.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Readyz checks whether the service and its dependencies are ready.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Authenticated operations
// ============================================================================

// Me returns the caller's resolved role, permissions and landing page.
func (c *Client) Me(ctx context.Context) (*MeResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/me", nil)
	if err != nil {
		return nil, err
	}

	var out MeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sidebar returns the per-item navigation visibility for the caller.
func (c *Client) Sidebar(ctx context.Context) (*SidebarResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/me/sidebar", nil)
	if err != nil {
		return nil, err
	}

	var out SidebarResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// RouteAccess answers whether the caller may access the given route path.
func (c *Client) RouteAccess(ctx context.Context, path string) (*RouteAccessResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/me/routes?path="+url.QueryEscape(path), nil)
	if err != nil {
		return nil, err
	}

	var out RouteAccessResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAdmins returns every admin record, active and pending.
func (c *Client) ListAdmins(ctx context.Context) (*ListAdminsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/admins", nil)
	if err != nil {
		return nil, err
	}

	var out ListAdminsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInvitation issues a new invitation and returns the shareable link.
func (c *Client) CreateInvitation(ctx context.Context, email, role string) (*CreateInvitationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invitations",
		CreateInvitationRequest{Email: email, Role: role})
	if err != nil {
		return nil, err
	}

	var out CreateInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInvitation revokes the pending invitation for an email.
func (c *Client) DeleteInvitation(ctx context.Context, email string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/invitations/"+url.PathEscape(email), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// DeleteAdmin removes an admin record, revoking their access.
func (c *Client) DeleteAdmin(ctx context.Context, email string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/admins/"+url.PathEscape(email), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
