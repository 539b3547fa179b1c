// Package storeapi is the HTTP client for the upstream store backend. It
// implements the review, subscription and variant repositories.
package storeapi

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
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/storefront/internal/apperrors"
	"github.com/SscSPs/storefront/internal/middleware"
	"github.com/SscSPs/storefront/internal/observability/metrics"
	"golang.org/x/oauth2/clientcredentials"
)

// CustomerHeader identifies the customer a call is made on behalf of.
const CustomerHeader = "X-Customer-ID"

const maxErrorBody = 4 << 10

// Config configures the store API client.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	ClientID     string
	ClientSecret string
	TokenURL     string
}

// Client calls the store API. It is safe for concurrent use.
//
// Paths keep the trailing slash the store API routes require.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient builds a client. When ClientID is set, requests carry an OAuth2
// client-credentials token fetched from TokenURL.
func NewClient(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid store API base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid store API base URL %q: scheme and host required", cfg.BaseURL)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.ClientID != "" {
		tokenURL := cfg.TokenURL
		if tokenURL == "" {
			tokenURL = base.String() + "/oauth/token/"
		}
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
		}
		httpClient = cc.Client(context.Background())
		httpClient.Timeout = cfg.Timeout
	}

	return NewClientWithHTTP(base, httpClient), nil
}

// NewClientWithHTTP builds a client around an existing http.Client.
func NewClientWithHTTP(base *url.URL, httpClient *http.Client) *Client {
	return &Client{baseURL: base, httpClient: httpClient}
}

type request struct {
	resource   string
	method     string
	path       string
	query      url.Values
	customerID string
	body       any
}

// do executes req and decodes a JSON response into out when out is non-nil.
// Non-2xx responses become *apperrors.AppError carrying the upstream status.
func (c *Client) do(ctx context.Context, req request, out any) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	endpoint := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		endpoint.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", req.resource, err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", req.resource, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.customerID != "" {
		httpReq.Header.Set(CustomerHeader, req.customerID)
	}
	if requestID := middleware.GetRequestIDFromCtx(ctx); requestID != "" {
		httpReq.Header.Set(middleware.RequestIDHeader, requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.ObserveUpstream(req.resource, req.method, 0, time.Since(start))
		if errors.Is(err, context.Canceled) {
			return err
		}
		logger.Error("Store API request failed",
			slog.String("resource", req.resource),
			slog.String("method", req.method),
			slog.String("url", endpoint.Redacted()),
			slog.String("error", err.Error()))
		return apperrors.NewAppError(http.StatusBadGateway, "store API unreachable", fmt.Errorf("%w: %v", apperrors.ErrUpstream, err))
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(req.resource, req.method, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := errorMessage(raw, resp.Status)
		logger.Warn("Store API returned error",
			slog.String("resource", req.resource),
			slog.String("method", req.method),
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg))
		return apperrors.FromStatus(resp.StatusCode, msg)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperrors.NewAppError(http.StatusBadGateway, "invalid store API response", fmt.Errorf("%w: decode %s: %v", apperrors.ErrUpstream, req.resource, err))
	}
	return nil
}

// errorMessage extracts a readable message from a DRF-style error body:
// {"detail": "..."}, {"error": "..."} or {"field": ["..."]}.
func errorMessage(raw []byte, fallback string) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return fallback
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return fallback
	}
	for _, key := range []string{"detail", "error", "message"} {
		if s, ok := body[key].(string); ok && s != "" {
			return s
		}
	}
	var parts []string
	for field, v := range body {
		switch msgs := v.(type) {
		case []any:
			for _, m := range msgs {
				if s, ok := m.(string); ok {
					parts = append(parts, field+": "+s)
				}
			}
		case string:
			parts = append(parts, field+": "+msgs)
		}
	}
	if len(parts) == 0 {
		return fallback
	}
	slices.Sort(parts)
	return strings.Join(parts, "; ")
}
