// Package gateway is the HTTP client for the remote trip search backend. It
// implements the domain backend interfaces and maps transport and status
// failures onto domain errors.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/corptravel/trip-search-client/internal/domain"
	"github.com/corptravel/trip-search-client/internal/infrastructure/logger"
)

const (
	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 16 << 20

	// requestIDHeader correlates backend calls with companion API requests.
	requestIDHeader = "X-Request-ID"
)

// Config configures a Client.
type Config struct {
	// BaseURL is the backend origin, e.g. https://travel.example.com
	BaseURL string

	// Token is the initial bearer token (may be empty)
	Token string

	// HTTPClient overrides the default client. Per-call deadlines come from
	// the request context, so it should not set its own Timeout.
	HTTPClient *http.Client
}

// Client is a thin JSON-over-HTTP client for the backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger

	mu        sync.RWMutex
	token     string
	onExpired func()
}

// NewClient creates a Client.
func NewClient(cfg Config, log *logger.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
		log:     logger.OrNop(log).WithComponent("gateway"),
		token:   cfg.Token,
	}
}

// SetToken replaces the bearer token sent with every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// OnSessionExpired registers fn to run whenever the backend answers 401.
func (c *Client) OnSessionExpired(fn func()) {
	c.mu.Lock()
	c.onExpired = fn
	c.mu.Unlock()
}

func (c *Client) credentials() (string, func()) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.onExpired
}

// do sends one request. body and out may be nil. Context errors are returned
// as-is (wrapped) so callers can tell cancellation from failure.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if reqID := logger.RequestIDFromContext(ctx); reqID != "" {
		req.Header.Set(requestIDHeader, reqID)
	}
	token, onExpired := c.credentials()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		return fmt.Errorf("%w: %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		return fmt.Errorf("%w: read %s %s: %v", domain.ErrBackendUnavailable, method, path, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Backend call")

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if onExpired != nil {
			onExpired()
		}
		return fmt.Errorf("%w: %w", domain.ErrSessionExpired, domain.NewAPIError(resp.StatusCode, parseDetail(data)))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return domain.NewAPIError(resp.StatusCode, parseDetail(data))
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// parseDetail extracts the user-facing message from an error body of the form
// {"detail": "..."}. Validation errors carry a list of {"msg": "..."} objects
// instead; the first message is used.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
		return strings.TrimSpace(items[0].Msg)
	}
	return ""
}
