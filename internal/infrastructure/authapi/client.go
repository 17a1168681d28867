// Package authapi is the HTTP client for the external authentication
// service. The platform never stores passwords itself; login and password
// recovery are forwarded here.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/manara-academy/platform-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the auth service at baseURL. A default
// request timeout is applied when none is provided.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  *domain.Profile `json:"user"`
}

type apiError struct {
	Message string `json:"message"`
	Error_  string `json:"error"`
}

func (e apiError) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error_
}

// Login exchanges credentials for a token and profile.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.Profile, error) {
	var resp loginResponse
	if err := c.post(ctx, "/v1/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", nil, err
	}
	if resp.Token == "" || resp.User == nil {
		return "", nil, fmt.Errorf("auth login: incomplete response")
	}
	return resp.Token, resp.User, nil
}

// ForgetPassword asks the auth service to email a reset link.
func (c *Client) ForgetPassword(ctx context.Context, email string) error {
	return c.post(ctx, "/v1/auth/forget-password", map[string]string{"email": email}, nil)
}

// ResetPassword consumes a recovery token and sets a new password.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "new_password": newPassword}
	return c.post(ctx, "/v1/auth/reset-password", body, nil)
}

// post issues a JSON POST and decodes the response into out when non-nil.
// Non-2xx responses with a message payload become *domain.RemoteError so the
// server-provided message can be surfaced verbatim; responses without one
// stay generic.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("auth request encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("auth request build: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ae apiError
		_ = json.NewDecoder(resp.Body).Decode(&ae)
		if resp.StatusCode == http.StatusUnauthorized {
			return domain.ErrInvalidCredentials
		}
		if msg := ae.message(); msg != "" {
			return &domain.RemoteError{Status: resp.StatusCode, Message: msg}
		}
		return fmt.Errorf("auth service: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("auth response decode: %w", err)
	}
	return nil
}
