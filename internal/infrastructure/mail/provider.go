// Package mail implements the email-delivery provider client. The provider
// exposes a JSON API that accepts a rendered message and returns a dispatch
// identifier confirming acceptance.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/manara-academy/platform-api/internal/core/domain"
)

const defaultTimeout = 15 * time.Second

type ProviderClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewProviderClient(baseURL, apiKey string, timeout time.Duration) *ProviderClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ProviderClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send forwards the message to the provider and returns its dispatch
// receipt. Any non-2xx response or transport failure is an error; callers
// decide how much of it to surface.
func (p *ProviderClient) Send(ctx context.Context, msg domain.EmailMessage) (*domain.DispatchReceipt, error) {
	payload, err := json.Marshal(sendRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("mail encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("mail request build: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("mail provider: unexpected status %d", resp.StatusCode)
	}

	var body sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("mail response decode: %w", err)
	}
	if body.ID == "" {
		return nil, fmt.Errorf("mail provider: missing dispatch id")
	}

	return &domain.DispatchReceipt{ID: body.ID, AcceptedAt: time.Now().UTC()}, nil
}
