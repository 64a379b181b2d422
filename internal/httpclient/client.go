// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

// Package httpclient is the shared transport for both collaborators. It owns
// the cookie jar carrying the session cookie, echoes the XSRF-TOKEN cookie
// into the X-XSRF-TOKEN header on mutating verbs, and enforces the fixed
// per-request timeout.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/SOUSSIoumaima/hsurvey-front/internal/logging"
)

const (
	xsrfCookieName = "XSRF-TOKEN"
	xsrfHeaderName = "X-XSRF-TOKEN"

	// DefaultTimeout matches the collaborator contract's fixed request
	// timeout.
	DefaultTimeout = 10 * time.Second
)

var mutatingMethods = []string{http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch}

type Client struct {
	baseURL *url.URL
	client  *http.Client

	logger logging.LoggerInterface
}

func NewClient(baseURL string, timeout time.Duration, logger logging.LoggerInterface) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid collaborator base URL: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: base,
		client: &http.Client{
			Jar:       jar,
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Do issues a JSON request against the collaborator and decodes the response
// body into out when out is non-nil. Non-2xx responses are folded into an
// *APIError carrying the collaborator's message/error fields.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if slices.Contains(mutatingMethods, method) {
		if token := c.xsrfToken(); token != "" {
			req.Header.Set(xsrfHeaderName, token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Debugf("collaborator error %s %s: status %d", method, path, resp.StatusCode)
		return newAPIError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

func (c *Client) xsrfToken() string {
	for _, cookie := range c.client.Jar.Cookies(c.baseURL) {
		if cookie.Name == xsrfCookieName {
			return cookie.Value
		}
	}
	return ""
}
