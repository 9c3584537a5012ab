// Package email delivers outgoing mail, either through the Resend API or by
// logging it for development.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nfrund/amantech/internal/config"
)

// Provider names accepted by New.
const (
	ProviderNone   = "none"
	ProviderLog    = "log"
	ProviderResend = "resend"

	// DefaultResendEndpoint is the Resend send-email API.
	DefaultResendEndpoint = "https://api.resend.com/emails"
)

// Message is one outgoing email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender sends email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New returns the sender configured by cfg. It returns nil, nil when email
// is disabled.
func New(cfg config.Provider) (Sender, error) {
	switch cfg.GetEmailProvider() {
	case ProviderNone, "":
		return nil, nil
	case ProviderLog:
		return NewLogSender(cfg.GetEmailSender(), nil), nil
	case ProviderResend:
		if cfg.GetEmailAPIKey() == "" {
			return nil, fmt.Errorf("email provider is 'resend' but EMAIL_API_KEY is not set")
		}
		return NewResendSender(cfg.GetEmailAPIKey(), cfg.GetEmailSender()), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.GetEmailProvider())
	}
}

// LogSender writes emails to a logger instead of sending them.
type LogSender struct {
	from   string
	logger *slog.Logger
}

// NewLogSender creates a LogSender. A nil logger means the default logger.
func NewLogSender(from string, logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{from: from, logger: logger}
}

// Send implements Sender.
func (s *LogSender) Send(ctx context.Context, msg Message) error {
	s.logger.InfoContext(ctx, "Email sent (logged)",
		"from", s.from,
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.HTML,
	)
	return nil
}

// ResendSender sends emails using the Resend API.
type ResendSender struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

// ResendOption configures a ResendSender.
type ResendOption func(*ResendSender)

// WithEndpoint points the sender at another URL.
func WithEndpoint(url string) ResendOption {
	return func(s *ResendSender) { s.endpoint = url }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) ResendOption {
	return func(s *ResendSender) { s.client = c }
}

// NewResendSender creates a sender authenticating with apiKey.
func NewResendSender(apiKey, from string, opts ...ResendOption) *ResendSender {
	s := &ResendSender{
		apiKey:   apiKey,
		from:     from,
		endpoint: DefaultResendEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	from := s.from
	if from == "" {
		from = "Amantech <onboarding@resend.dev>"
	}

	body, err := json.Marshal(resendPayload{
		From:    from,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend API returned an error: status %d", resp.StatusCode)
	}

	slog.DebugContext(ctx, "Sent email via Resend", "to", msg.To, "subject", msg.Subject)
	return nil
}
