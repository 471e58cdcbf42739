// Package platformapi implements the outbound REST client for the GiveHub
// platform. Every call rides the shared RoundTripper chain, which injects the
// caller's bearer token from the request context and logs the exchange, and
// every failure leaves this package as a normalized *errors.APIError.
package platformapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	authclient "givehub-admin/internal/auth/domain/client"
	"givehub-admin/internal/dashboard/config"
	"givehub-admin/internal/dashboard/domain/client"
	apperrors "givehub-admin/internal/shared/errors"
	"givehub-admin/internal/shared/httpx"
	"givehub-admin/internal/shared/logger"
)

// Client talks to the platform REST API on behalf of the signed-in user.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
}

// NewClient builds a platform client from the dashboard configuration. The
// transport chain runs the bearer injector first so the access log sees the
// request exactly as it goes out.
func NewClient(cfg *config.Config, log logger.Logger) *Client {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	chain := httpx.NewChain(
		httpx.BearerFromContext(),
		httpx.LogRequests(log),
	)

	return &Client{
		baseURL: strings.TrimRight(cfg.PlatformBaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.PlatformTimeout,
			Transport: chain.Then(nil),
		},
		log: log.WithComponent("platform_client"),
	}
}

// BaseURL returns the normalized platform address, mainly for logging.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one request and decodes a JSON answer into out when out is
// non-nil. Non-2xx answers and transport failures come back as *APIError.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &apperrors.APIError{Kind: apperrors.APIErrorKindOther, Message: apperrors.DefaultAPIErrorMessage}
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.normalizeTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return normalizeResponseError(resp)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.WithContext(ctx).Warnf("undecodable platform response for %s %s: %v", method, path, err)
		return &apperrors.APIError{
			Kind:    apperrors.APIErrorKindOther,
			Message: "The platform returned a response the dashboard could not read.",
		}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return &apperrors.APIError{Kind: apperrors.APIErrorKindOther, Message: apperrors.DefaultAPIErrorMessage}
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(encoded), out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

var (
	_ client.PlatformAPI       = (*Client)(nil)
	_ authclient.Authenticator = (*Client)(nil)
)
