package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"mnp-alarm/core/metrics"
	"mnp-alarm/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const maxBodyBytes = 1 << 20

// ErrNoNumbers is returned when a batch is requested for no numbers.
var ErrNoNumbers = errors.New("no numbers to look up")

// Client performs HLR lookups. It is safe for concurrent use.
type Client struct {
	cfg     Config
	http    *http.Client
	timeout time.Duration
	limiter *rate.Limiter
	metrics *metrics.Recorder
	logger  *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout overrides the per-lookup timeout from the configuration.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithMetrics records lookup outcomes.
func WithMetrics(r *metrics.Recorder) Option {
	return func(c *Client) { c.metrics = r }
}

// WithLogger sets the logger used for per-number failures.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a lookup client. The URL template must contain {number}.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("lookup url is not configured")
	}
	if !strings.Contains(cfg.URL, "{number}") {
		return nil, fmt.Errorf("lookup url %q has no {number} placeholder", cfg.URL)
	}

	c := &Client{
		cfg:     cfg,
		http:    &http.Client{},
		timeout: cfg.timeout(),
		logger:  zap.NewNop(),
	}
	if cfg.RatePerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.concurrency())
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// URL builds the lookup URL for number.
func (c *Client) URL(number string) string {
	r := strings.NewReplacer(
		"{login}", url.QueryEscape(c.cfg.Login),
		"{password}", url.QueryEscape(c.cfg.Password),
		"{number}", url.QueryEscape(number),
	)
	return r.Replace(c.cfg.URL)
}

// FetchMany looks up every number with at most Concurrency calls in flight.
// The result holds one entry per number; a failed call is recorded in that
// number's entry and never stops the other calls. An error is returned only
// when no lookup could be started at all.
func (c *Client) FetchMany(ctx context.Context, numbers []string) (map[string]reconcile.LookupResult, error) {
	if len(numbers) == 0 {
		return nil, ErrNoNumbers
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("lookup batch not started: %w", err)
	}

	// Each task owns one slot; the map is assembled after all tasks settle.
	slots := make([]reconcile.LookupResult, len(numbers))

	var g errgroup.Group
	g.SetLimit(c.cfg.concurrency())
	for i, number := range numbers {
		g.Go(func() error {
			raw, err := c.Lookup(ctx, number)
			slots[i] = reconcile.LookupResult{Raw: raw, Err: err}
			c.metrics.ObserveLookup(err)
			if err != nil {
				c.logger.Warn("HLR lookup failed", zap.String("number", number), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]reconcile.LookupResult, len(numbers))
	for i, number := range numbers {
		results[number] = slots[i]
	}
	return results, nil
}

// Lookup performs one lookup bounded by the per-call timeout.
func (c *Client) Lookup(ctx context.Context, number string) (reconcile.RawRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(number), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hlr request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("hlr returned status %d", resp.StatusCode)
	}

	var raw reconcile.RawRecord
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode hlr response: %w", err)
	}
	if raw == nil {
		return nil, errors.New("hlr returned an empty response")
	}
	return raw, nil
}
