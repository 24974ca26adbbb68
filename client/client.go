// Package client implements the typed HTTP client for the Farm-Guru backend.
//
// Every operation issues exactly one request against a base URL fixed at
// construction time. The client performs no retries, no caching and no local
// validation of request fields; empty required values are forwarded as-is
// and rejected by the backend. Failures surface as *APIError whose message
// is either the backend's detail field or the operation's fallback message,
// so callers never need to branch on HTTP status codes.
package client

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

	"farmguru/config"
	"farmguru/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client talks to one Farm-Guru backend. It holds no mutable state across
// calls and is safe for concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// New returns a client configured from AppConfig.
func New() *Client {
	return NewWithBaseURL(config.AppConfig.APIBaseURL)
}

// NewWithBaseURL returns a client bound to the given base URL for its
// lifetime. An empty URL falls back to the local-development default.
func NewWithBaseURL(baseURL string) *Client {
	if baseURL == "" {
		baseURL = config.DefaultAPIBaseURL
	}
	timeout := time.Duration(config.AppConfig.HTTPTimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		logger:  utils.GetLogger(),
	}
}

var (
	defaultClient *Client
	defaultOnce   sync.Once
)

// Default returns a process-wide convenience instance built from AppConfig
// on first use. Explicit construction via New or NewWithBaseURL is preferred.
func Default() *Client {
	defaultOnce.Do(func() {
		defaultClient = New()
	})
	return defaultClient
}

// BaseURL reports the backend address the client is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError carries the human-readable message extracted from a failed call.
type APIError struct {
	Op      string // endpoint path
	Status  int    // HTTP status, informational only
	Message string
}

// Error returns the message alone so callers can show it directly.
func (e *APIError) Error() string {
	return e.Message
}

// getJSON issues a GET with query-string encoding and decodes the response.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, fallback string, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	return c.do(req, fallback, out)
}

// postJSON issues a POST with a JSON body and decodes the response.
func (c *Client) postJSON(ctx context.Context, path string, body any, fallback string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, fallback, out)
}

// do executes a single request. Non-2xx responses become *APIError; a body
// that fails to decode propagates as a wrapped decode error.
func (c *Client) do(req *http.Request, fallback string, out any) error {
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallback, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.apiError(req, resp, fallback)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", fallback, err)
	}
	return nil
}

// apiError extracts the backend's detail message, falling back to the
// operation's default when the body is absent or unparseable.
func (c *Client) apiError(req *http.Request, resp *http.Response, fallback string) error {
	msg := fallback
	body, _ := io.ReadAll(resp.Body)

	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		msg = detail.Detail
	}

	c.logger.Warn("farm-guru request failed",
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("message", msg))

	return &APIError{Op: req.URL.Path, Status: resp.StatusCode, Message: msg}
}

// Fallback messages used when a failed response carries no detail field.
const (
	msgQueryFailed       = "Query failed"
	msgHistoryFailed     = "Query history unavailable"
	msgWeatherFailed     = "Weather fetch failed"
	msgForecastFailed    = "Extended forecast unavailable"
	msgMarketFailed      = "Market fetch failed"
	msgCommoditiesFailed = "Commodity list unavailable"
	msgMandisFailed      = "Mandi list unavailable"
	msgAnalysisFailed    = "Market analysis unavailable"
	msgUploadFailed      = "Image upload failed"
	msgPolicyFailed      = "Policy match failed"
	msgSchemesFailed     = "Scheme list unavailable"
	msgStatesFailed      = "State list unavailable"
	msgChemRecoFailed    = "Recommendation failed"
	msgCropsFailed       = "Crop list unavailable"
	msgSymptomsFailed    = "Symptom list unavailable"
	msgHealthFailed      = "Health check failed"
)
