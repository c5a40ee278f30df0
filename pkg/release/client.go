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

package release

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gderrors "github.com/webdrivers/godriver/pkg/errors"
	"github.com/webdrivers/godriver/pkg/httpclient"
	"github.com/webdrivers/godriver/pkg/version"
)

// Client resolves the latest point release for a browser build against a
// remote release index.
//
// The index exposes one plain-text resource per release line
// (LATEST_RELEASE_{major.minor.build}) and one unscoped resource
// (LATEST_RELEASE) naming the newest release overall.
type Client struct {
	subject string
	baseURL string
	http    httpclient.Client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient substitutes the network client.
func WithHTTPClient(c httpclient.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// New creates a release index Client for subject rooted at baseURL.
func New(subject, baseURL string, opts ...Option) *Client {
	c := &Client{
		subject: subject,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpclient.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ScopedURL returns the index resource naming the latest release for the
// given build line.
func (c *Client) ScopedURL(build version.Version) string {
	return fmt.Sprintf("%s/LATEST_RELEASE_%s", c.baseURL, build.String())
}

// UnscopedURL returns the index resource naming the latest release overall.
func (c *Client) UnscopedURL() string {
	return fmt.Sprintf("%s/LATEST_RELEASE", c.baseURL)
}

// LatestPointRelease resolves the newest driver release for the given
// browser build.
//
// The scoped resource is tried first. On a network failure the unscoped
// resource refines the diagnostic: if the newest release overall is older
// than the requested build, the browser is ahead of every released driver
// (StageBrowserAhead); otherwise the scoped entry is simply unavailable
// (StageLookupFailed). If the fallback also fails, the network itself is
// the problem (StageNetworkFailure). All three paths terminate in a
// ResolutionError; a fallback success refines the message but never
// rescues the resolution.
func (c *Client) LatestPointRelease(ctx context.Context, build version.Version) (version.Version, error) {
	if build.IsZero() {
		return version.NoVersion, gderrors.New(gderrors.ErrCodeInvalidRequest,
			"browser build version is required for a scoped release lookup")
	}

	start := time.Now()
	scopedURL := c.ScopedURL(build)

	body, err := c.http.Get(ctx, scopedURL)
	if err == nil {
		v := version.Parse(strings.TrimSpace(body))
		if v.IsZero() {
			lookupOutcomes.WithLabelValues(outcomeBadBody).Inc()
			return version.NoVersion, &ResolutionError{
				Subject: c.subject,
				Build:   build,
				Stage:   StageLookupFailed,
				Detail:  fmt.Sprintf("release index returned an unparseable body %q from %s", strings.TrimSpace(body), scopedURL),
			}
		}

		lookupDuration.Observe(time.Since(start).Seconds())
		lookupOutcomes.WithLabelValues(outcomePrimary).Inc()
		slog.Debug("scoped release lookup succeeded",
			"subject", c.subject,
			"build", build.String(),
			"resolved", v.String(),
		)
		return v, nil
	}

	if !gderrors.IsNetwork(err) {
		// Not a transport problem (for example, context misuse); surface
		// unchanged rather than inventing a fallback.
		return version.NoVersion, err
	}

	slog.Debug("scoped release lookup failed, consulting unscoped index",
		"subject", c.subject,
		"build", build.String(),
		"error", err,
	)

	return c.fallback(ctx, build, err)
}

// fallback interrogates the unscoped index purely to compose the right
// diagnostic for a failed scoped lookup.
func (c *Client) fallback(ctx context.Context, build version.Version, scopedErr error) (version.Version, error) {
	body, err := c.http.Get(ctx, c.UnscopedURL())
	if err != nil {
		lookupOutcomes.WithLabelValues(outcomeNetworkFailure).Inc()
		return version.NoVersion, &ResolutionError{
			Subject: c.subject,
			Build:   build,
			Stage:   StageNetworkFailure,
			Detail:  "a network issue prevented reaching the release index; the latest release cannot be determined",
			Cause:   err,
		}
	}

	latest := version.Parse(strings.TrimSpace(body))
	if !latest.IsZero() && latest.Less(build) {
		lookupOutcomes.WithLabelValues(outcomeBrowserAhead).Inc()
		return version.NoVersion, &ResolutionError{
			Subject: c.subject,
			Build:   build,
			Stage:   StageBrowserAhead,
			Detail: fmt.Sprintf("browser build %s is newer than any released %s (latest published is %s); you appear to be running a non-production browser build",
				build.String(), c.subject, latest.String()),
			Cause: scopedErr,
		}
	}

	lookupOutcomes.WithLabelValues(outcomeLookupFailed).Inc()
	detail := fmt.Sprintf("release lookup for build %s failed", build.String())
	if !latest.IsZero() {
		detail = fmt.Sprintf("%s (latest published release is %s)", detail, latest.String())
	}
	return version.NoVersion, &ResolutionError{
		Subject: c.subject,
		Build:   build,
		Stage:   StageLookupFailed,
		Detail:  detail,
		Cause:   scopedErr,
	}
}
