package alert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SMSSender delivers alert texts through an HTTP SMS gateway.
type SMSSender struct {
	cfg    Config
	client *http.Client
}

// NewSMSSender creates a sender for the configured gateway. The URL template
// must contain {text}, otherwise every alert would go out empty.
func NewSMSSender(cfg Config) (*SMSSender, error) {
	if cfg.URL == "" {
		return nil, errors.New("alert url is not configured")
	}
	if !strings.Contains(cfg.URL, "{text}") {
		return nil, fmt.Errorf("alert url %q has no {text} placeholder", cfg.URL)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	return &SMSSender{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}, nil
}

// URL builds the gateway URL for text. The text is form-escaped, so spaces
// become "+" and line breaks "%0A".
func (s *SMSSender) URL(text string) string {
	r := strings.NewReplacer(
		"{login}", url.QueryEscape(s.cfg.Login),
		"{password}", url.QueryEscape(s.cfg.Password),
		"{destination}", url.QueryEscape(s.cfg.Destination),
		"{text}", url.QueryEscape(text),
	)
	return r.Replace(s.cfg.URL)
}

// Send performs one delivery attempt. The gateway's response body is not
// inspected; only transport errors and non-2xx statuses are reported.
func (s *SMSSender) Send(ctx context.Context, text string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(text), nil)
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}
	return nil
}
