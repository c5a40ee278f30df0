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

package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/webdrivers/godriver/pkg/cache"
	gderrors "github.com/webdrivers/godriver/pkg/errors"
	"github.com/webdrivers/godriver/pkg/platform"
	"github.com/webdrivers/godriver/pkg/release"
	"github.com/webdrivers/godriver/pkg/version"
)

// Resolver decides which driver version should be active for the current
// browser, and where to download it from.
type Resolver struct {
	subject Subject
	cache   *cache.Cache
	index   *release.Client
	host    platform.Resolver

	// group coalesces identical in-flight network resolutions. Keyed by
	// subject and browser build; two builds in flight at once must each
	// get their own answer.
	group singleflight.Group

	urlOnce sync.Once
	url     string
}

// Option is a functional option for configuring the Resolver.
type Option func(*Resolver)

// WithCache substitutes the version cache.
func WithCache(c *cache.Cache) Option {
	return func(r *Resolver) {
		r.cache = c
	}
}

// WithIndexClient substitutes the release index client.
func WithIndexClient(c *release.Client) Option {
	return func(r *Resolver) {
		r.index = c
	}
}

// WithHost substitutes the platform resolver.
func WithHost(host platform.Resolver) Option {
	return func(r *Resolver) {
		r.host = host
	}
}

// New creates a Resolver for subject. Without options it uses an in-memory
// cache, a real release index client, and the current host platform.
func New(subject Subject, opts ...Option) *Resolver {
	r := &Resolver{
		subject: subject,
		cache:   cache.New(cache.NewMemoryStore()),
		index:   release.New(subject.Name, subject.BaseURL),
		host:    platform.NewHost(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Subject returns the resolver's subject configuration.
func (r *Resolver) Subject() Subject {
	return r.subject
}

// resolved pairs a version with its cache provenance across the
// singleflight boundary.
type resolved struct {
	version version.Version
	fromHit bool
}

// Resolve determines the driver version that should be active right now.
//
// Precedence: an explicit pin wins outright and touches neither cache nor
// network; browser builds predating the subject's per-build release index
// resolve to the fixed legacy version; everything else goes through the
// cache, hitting the release index only when the cached answer was
// resolved for a different browser build.
func (r *Resolver) Resolve(ctx context.Context, req Request) (Result, error) {
	logger := slog.With(
		"subject", r.subject.Name,
		"resolution_id", uuid.NewString(),
	)

	if !req.Pinned.IsZero() {
		logger.Debug("using pinned version", "pinned", req.Pinned.String())
		resolutions.WithLabelValues(string(SourcePinned)).Inc()
		return Result{Version: req.Pinned, Source: SourcePinned}, nil
	}

	if req.BrowserBuild.IsZero() {
		return Result{}, gderrors.New(gderrors.ErrCodeInvalidRequest,
			"browser build version is required; no browser installation was detected and no version was pinned")
	}

	if req.BrowserBuild.Less(r.subject.LegacyCutoff) {
		logger.Debug("browser predates per-build release indices",
			"browser_build", req.BrowserBuild.String(),
			"legacy_version", r.subject.LegacyVersion.String(),
		)
		resolutions.WithLabelValues(string(SourceHardcodedLegacy)).Inc()
		return Result{Version: r.subject.LegacyVersion, Source: SourceHardcodedLegacy}, nil
	}

	start := time.Now()
	flightKey := r.subject.Name + "/" + req.BrowserBuild.String()
	v, err, shared := r.group.Do(flightKey, func() (any, error) {
		ver, hit, err := r.cache.WithCache(ctx, r.subject.Name, req.LocalBuild, req.BrowserBuild,
			func(ctx context.Context) (version.Version, error) {
				return r.index.LatestPointRelease(ctx, req.BrowserBuild)
			})
		if err != nil {
			return nil, err
		}
		return resolved{version: ver, fromHit: hit}, nil
	})
	if err != nil {
		// Resolution failures propagate untouched and are never cached.
		return Result{}, err
	}

	res := v.(resolved)
	source := SourceNetworkPrimary
	if res.fromHit {
		source = SourceCache
	}

	logger.Info("resolved driver version",
		"browser_build", req.BrowserBuild.String(),
		"resolved", res.version.String(),
		"source", string(source),
		"coalesced", shared,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	resolutions.WithLabelValues(string(source)).Inc()

	return Result{Version: res.version, Source: source}, nil
}

// LocalSufficient reports whether the locally installed driver described
// by req can keep serving the current browser, making a fresh download
// unnecessary.
func (r *Resolver) LocalSufficient(req Request) bool {
	return Sufficient(req.LocalVersion, req.LocalBuild, req.BrowserBuild)
}

// DownloadURL renders the archive URL for the resolved driver version on
// this host. The URL is computed once per Resolver and reused for the
// remainder of its lifetime, so a caller that resolves twice downloads
// from the first rendering.
func (r *Resolver) DownloadURL(resolvedVersion version.Version) string {
	r.urlOnce.Do(func() {
		arch := ""
		if r.subject.ArchSuffix != nil {
			arch = r.subject.ArchSuffix(resolvedVersion, r.host)
		}
		r.url = fmt.Sprintf("%s/%s/%s_%s%s.zip",
			r.subject.BaseURL,
			resolvedVersion.String(),
			r.subject.ArtifactPrefix,
			r.host.Segment(),
			arch,
		)
	})
	return r.url
}

// ExecutableName returns the driver executable file name for this host.
func (r *Resolver) ExecutableName() string {
	return r.host.ExecutableName(r.subject.Name)
}
