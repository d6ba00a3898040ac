// Package authority implements the grant client against the external
// authorization server. All three grant types multiplex on the authority's
// single login endpoint via grant_type.
package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainauth "github.com/clearview/authgate/internal/domain/auth"
	"github.com/clearview/authgate/internal/ports"
)

var _ ports.AuthorityClient = (*Client)(nil)

const loginPath = "/api/oauth2/login"

const messageInvalidResponse = "Invalid response from server"

// Config holds configuration for the authority client.
type Config struct {
	// BaseURL is the authority's base URL.
	BaseURL string
	// Scopes is the set of requested capabilities, space-joined on the wire.
	Scopes []string
	// Timeout bounds each round-trip; defaults to 30s. A finite timeout is
	// mandatory so authority slowness cannot exhaust caller-side concurrency.
	Timeout time.Duration
	// HTTPClient overrides the default client; its own timeout wins when set.
	HTTPClient *http.Client
}

// Client exchanges credentials for Sessions. Each grant call is a single
// request/response round-trip with no retry; every failure is surfaced as an
// *domainauth.AuthorityError.
type Client struct {
	baseURL    string
	scope      string
	httpClient *http.Client
}

// NewClient constructs an authority client from Config.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("authority base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		scope:      strings.Join(cfg.Scopes, " "),
		httpClient: httpClient,
	}, nil
}

// PasswordGrant posts a form-encoded password grant to the login endpoint.
func (c *Client) PasswordGrant(ctx context.Context, in ports.PasswordGrantInput) (domainauth.Session, error) {
	form := url.Values{
		"client_id":  {in.ClientID},
		"scope":      {c.scope},
		"grant_type": {"password"},
		"username":   {in.Username},
		"password":   {in.Password},
	}
	return c.post(ctx, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

// APIKeyGrant posts a JSON api_key grant to the login endpoint.
func (c *Client) APIKeyGrant(ctx context.Context, in ports.APIKeyGrantInput) (domainauth.Session, error) {
	payload := map[string]string{
		"grant_type": "api_key",
		"scope":      c.scope,
		"client_id":  in.ClientID,
		"api_key":    in.APIKey,
		"api_secret": in.APISecret,
	}
	return c.postJSON(ctx, payload)
}

// RefreshGrant posts a JSON refresh_token grant to the login endpoint.
func (c *Client) RefreshGrant(ctx context.Context, in ports.RefreshGrantInput) (domainauth.Session, error) {
	payload := map[string]string{
		"grant_type":    "refresh_token",
		"scope":         c.scope,
		"client_id":     in.ClientID,
		"provider_uuid": in.ProviderUUID,
		"refresh_token": in.RefreshToken,
	}
	return c.postJSON(ctx, payload)
}

func (c *Client) postJSON(ctx context.Context, payload map[string]string) (domainauth.Session, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domainauth.Session{}, &domainauth.AuthorityError{
			Status:  0,
			Message: fmt.Sprintf("encode grant request: %v", err),
		}
	}
	return c.post(ctx, "application/json", bytes.NewReader(body))
}

// post performs the round-trip and maps every failure, transport-level
// included, into an AuthorityError. Status 0 marks non-HTTP failures.
func (c *Client) post(ctx context.Context, contentType string, body io.Reader) (domainauth.Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, body)
	if err != nil {
		return domainauth.Session{}, &domainauth.AuthorityError{
			Status:  0,
			Message: fmt.Sprintf("build grant request: %v", err),
		}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainauth.Session{}, &domainauth.AuthorityError{
			Status:  0,
			Message: fmt.Sprintf("authority unreachable: %v", err),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainauth.Session{}, &domainauth.AuthorityError{
			Status:  0,
			Message: fmt.Sprintf("read authority response: %v", err),
		}
	}

	if resp.StatusCode != http.StatusOK {
		return domainauth.Session{}, &domainauth.AuthorityError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("Authentication failed with code %d: %s", resp.StatusCode, respBody),
		}
	}

	var session domainauth.Session
	if err := json.Unmarshal(respBody, &session); err != nil {
		return domainauth.Session{}, &domainauth.AuthorityError{
			Status:  http.StatusBadRequest,
			Message: messageInvalidResponse,
		}
	}
	return session, nil
}
