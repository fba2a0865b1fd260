package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/dmitrymomot/storefront/core/logger"
)

// TokenSource yields the bearer token for outgoing requests. An empty token
// or an error means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// Envelope is the response wrapper used by every endpoint.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Client performs JSON requests against the storefront API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func(context.Context)
	retryAttempts  uint64
	retryInterval  time.Duration
	logger         *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithUnauthorizedHandler sets the callback invoked on every 401 response.
func WithUnauthorizedHandler(fn func(context.Context)) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRetry overrides the GET retry policy. Zero attempts disables retries.
func WithRetry(attempts uint64, interval time.Duration) Option {
	return func(c *Client) {
		c.retryAttempts = attempts
		c.retryInterval = interval
	}
}

// New creates a client. An empty base URL falls back to DefaultBaseURL.
func New(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL:       base,
		httpClient:    &http.Client{Timeout: timeout},
		retryAttempts: cfg.RetryAttempts,
		retryInterval: cfg.RetryInterval,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.retryInterval <= 0 {
		c.retryInterval = 200 * time.Millisecond
	}
	return c, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET with retries and decodes data into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends body as JSON and decodes data into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put sends body as JSON and decodes data into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch sends body as JSON and decodes data into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete performs a DELETE and decodes data into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do performs a request. out may be nil when the payload is not needed.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("apiclient: encode request body: %w", err)
		}
	}

	if method != http.MethodGet || c.retryAttempts == 0 {
		return c.do(ctx, method, path, query, payload, out)
	}

	attempt := 0
	op := func() error {
		attempt++
		err := c.do(ctx, method, path, query, payload, out)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryInterval
	b.MaxElapsedTime = 0

	notify := func(err error, wait time.Duration) {
		c.logger.DebugContext(ctx, "retrying api request",
			logger.Method(method),
			logger.Path(path),
			logger.RetryCount(attempt),
			logger.Duration(wait),
			logger.Error(err),
		)
	}

	return backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(b, c.retryAttempts), ctx), notify)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte, out any) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "api request",
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.Elapsed(start),
	)

	var env Envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)
	if errors.Is(decodeErr, io.EOF) {
		decodeErr = nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode, Status: env.Status, Message: env.Message}
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized(context.WithoutCancel(ctx))
		}
		return apiErr
	}

	if decodeErr != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, decodeErr)
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return nil
}

func (c *Client) token(ctx context.Context) string {
	if c.tokens == nil {
		return ""
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return ""
	}
	return token
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return retryableStatus(apiErr.StatusCode)
	}
	return !errors.Is(err, ErrDecodeResponse)
}
