// Copyright (c) 2025, the godriver authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package httpclient

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/webdrivers/godriver/pkg/defaults"
	gderrors "github.com/webdrivers/godriver/pkg/errors"
)

const (
	// UserAgent identifies godriver to remote release indices.
	UserAgent = "godriver/1.0"

	// maxBodySize caps release index response bodies. Index entries are
	// short plain-text version strings; anything larger is suspect.
	maxBodySize = 1 << 20
)

// Client performs a GET of a URL and returns the response body text.
// Any transport or HTTP failure (non-2xx, DNS, timeout) surfaces as a
// structured network error detectable with errors.IsNetwork. No retry
// logic is provided; retries and redirects are the transport's concern.
type Client interface {
	Get(ctx context.Context, url string) (string, error)
}

// Option is a functional option for configuring the HTTPClient.
type Option func(*HTTPClient)

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *HTTPClient) {
		c.userAgent = userAgent
	}
}

// WithTimeout overrides the total request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		c.client.Timeout = timeout
	}
}

// WithRateLimit caps outbound requests per second with the given burst.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *HTTPClient) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithHTTPClient substitutes the underlying *http.Client (tests).
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = client
	}
}

// HTTPClient is the production Client backed by net/http with transport
// timeouts from pkg/defaults and a client-side rate limiter.
type HTTPClient struct {
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

// New creates an HTTPClient with default transport settings.
func New(opts ...Option) *HTTPClient {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
	}

	c := &HTTPClient{
		userAgent: UserAgent,
		client: &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: transport,
		},
		limiter: rate.NewLimiter(
			rate.Limit(defaults.ReleaseIndexRatePerSecond),
			defaults.ReleaseIndexRateBurst,
		),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get fetches url and returns the response body as text.
func (c *HTTPClient) Get(ctx context.Context, url string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			// The wait fails on context cancellation or deadline, before
			// any transport activity; it must not classify as a network
			// error, which callers treat as a cue for index fallbacks.
			return "", gderrors.Wrap(gderrors.ErrCodeInternal, "rate limiter wait aborted", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", gderrors.Wrap(gderrors.ErrCodeInvalidRequest, "building request", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return "", gderrors.WrapWithContext(gderrors.ErrCodeNetwork, "request failed", err,
			map[string]any{"url": url})
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr, "url", url)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", gderrors.NewWithContext(gderrors.ErrCodeNetwork,
			"unexpected response status",
			map[string]any{"url": url, "status": resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", gderrors.WrapWithContext(gderrors.ErrCodeNetwork, "reading response body", err,
			map[string]any{"url": url})
	}

	slog.Debug("GET completed",
		"url", url,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return string(body), nil
}
