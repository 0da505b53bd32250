// Package payment is a small client for the YooKassa payments API.
// Only payment creation is used: the shop gets back a hosted checkout
// URL and redirects the buyer there.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.yookassa.ru/v3"

type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type Confirmation struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

type CreateRequest struct {
	Amount       Amount            `json:"amount"`
	Confirmation Confirmation      `json:"confirmation"`
	Capture      bool              `json:"capture"`
	Description  string            `json:"description"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

type Payment struct {
	ID           string       `json:"id"`
	Status       string       `json:"status"`
	Amount       Amount       `json:"amount"`
	Confirmation Confirmation `json:"confirmation"`
}

type Client struct {
	shopID    string
	secretKey string
	baseURL   string
	httpc     *http.Client
	logger    *slog.Logger
}

type Option func(*Client)

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func NewClient(shopID, secretKey string, opts ...Option) *Client {
	c := &Client{
		shopID:    shopID,
		secretKey: secretKey,
		baseURL:   defaultBaseURL,
		httpc:     &http.Client{Timeout: 10 * time.Second},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreatePayment registers a payment and returns it with the hosted
// confirmation URL filled in. idempotenceKey lets the provider
// deduplicate a retried request.
func (c *Client) CreatePayment(ctx context.Context, idempotenceKey string, req CreateRequest) (*Payment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(c.shopID, c.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotence-Key", idempotenceKey)

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("yookassa: create payment: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("yookassa: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("yookassa create payment failed",
			"status", resp.StatusCode, "body", string(raw))
		return nil, fmt.Errorf("yookassa: create payment: status %d", resp.StatusCode)
	}

	var p Payment
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("yookassa: decode response: %w", err)
	}
	if p.Confirmation.ConfirmationURL == "" {
		return nil, fmt.Errorf("yookassa: payment %s has no confirmation url", p.ID)
	}
	return &p, nil
}
