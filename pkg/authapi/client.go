package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/umtportal/lostfound/pkg/models"
)

const defaultTimeout = 15 * time.Second

// Client talks to the remote auth service. One request at a time per
// submission is enforced by the callers; the client itself is safe for
// concurrent use.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Register submits a registration draft. Any 2xx counts as success; the
// decoded body is informational.
func (c *Client) Register(ctx context.Context, payload models.RegisterPayload) (models.RegisterResult, error) {
	var result models.RegisterResult
	err := c.postJSON(ctx, "/auth/register", payload, &result)
	return result, err
}

func (c *Client) Login(ctx context.Context, payload models.LoginPayload) (models.LoginResult, error) {
	var result models.LoginResult
	err := c.postJSON(ctx, "/auth/login", payload, &result)
	return result, err
}

// Me fetches the profile behind an access token. Used by the session check
// on protected pages.
func (c *Client) Me(ctx context.Context, accessToken string) (models.UserProfile, error) {
	var profile models.UserProfile
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return profile, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	err = c.do(req, &profile)
	return profile, err
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", path, err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// newRequest threads the caller's context through so a dropped browser
// connection cancels the outbound call; the client timeout bounds it
// otherwise.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", path, err)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth api request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read auth api response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, RawBody: string(raw)}
		var body map[string]any
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Detail = body["detail"]
		}
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode auth api response: %w", err)
		}
	}
	return nil
}
