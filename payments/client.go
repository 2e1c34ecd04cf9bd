// Package payments talks to the hosted-checkout payment provider: it opens
// checkout sessions, polls session status, and verifies webhook deliveries.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/feneonmalo-star/La-boutique-de-Lea/config"
)

// Session is the provider's answer to a session-creation request. URL is
// where the shopper gets redirected to pay.
type Session struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// Status is the provider's live view of a checkout session. AmountTotal is in
// minor currency units.
type Status struct {
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
}

// SessionRequest carries everything the provider needs to open a session.
type SessionRequest struct {
	Amount     float64           `json:"amount"`
	Currency   string            `json:"currency"`
	SuccessURL string            `json:"success_url"`
	CancelURL  string            `json:"cancel_url"`
	WebhookURL string            `json:"webhook_url"`
	Metadata   map[string]string `json:"metadata"`
}

// Client is the HTTP client for the provider's checkout API. Calls are single
// blocking round trips with no retry; the circuit breaker only fails fast
// while the provider is down.
type Client struct {
	http          *resty.Client
	breaker       *gobreaker.CircuitBreaker[*resty.Response]
	webhookSecret string
	logger        *zap.Logger
}

func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	http := resty.New().
		SetBaseURL(cfg.PaymentBaseURL).
		SetTimeout(30 * time.Second).
		SetAuthToken(cfg.PaymentAPIKey).
		SetHeader("Accept", "application/json")

	breaker := gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name:    "payment-gateway",
		Timeout: 30 * time.Second,
	})

	return &Client{
		http:          http,
		breaker:       breaker,
		webhookSecret: cfg.PaymentWebhookSecret,
		logger:        logger,
	}
}

// CreateSession opens a hosted checkout session for the given amount.
func (c *Client) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	resp, err := c.breaker.Execute(func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Post("/v1/checkout/sessions")
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if resp.StatusCode() != 200 {
		c.logger.Warn("gateway rejected session creation",
			zap.Int("status", resp.StatusCode()),
			zap.ByteString("body", resp.Body()))
		return nil, fmt.Errorf("create session: gateway returned status %d", resp.StatusCode())
	}

	var session Session
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return nil, fmt.Errorf("create session: decode response: %w", err)
	}
	if session.SessionID == "" || session.URL == "" {
		return nil, fmt.Errorf("create session: incomplete response from gateway")
	}
	return &session, nil
}

// GetStatus fetches the live status of a checkout session.
func (c *Client) GetStatus(ctx context.Context, sessionID string) (*Status, error) {
	resp, err := c.breaker.Execute(func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			Get("/v1/checkout/sessions/" + sessionID)
	})
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("get status: gateway returned status %d", resp.StatusCode())
	}

	var status Status
	if err := json.Unmarshal(resp.Body(), &status); err != nil {
		return nil, fmt.Errorf("get status: decode response: %w", err)
	}
	return &status, nil
}
