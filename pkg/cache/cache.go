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

package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/webdrivers/godriver/pkg/version"
)

// Entry records a resolved driver version together with the browser and
// local driver builds it was resolved for. An entry is trusted only while
// its BrowserBuild matches the browser currently installed; a browser
// upgrade invalidates it implicitly, without deletion.
type Entry struct {
	Subject      string          `json:"subject" yaml:"subject"`
	BrowserBuild version.Version `json:"browserBuild" yaml:"browserBuild"`
	LocalBuild   version.Version `json:"localBuild" yaml:"localBuild"`
	Resolved     version.Version `json:"resolved" yaml:"resolved"`
	UpdatedAt    time.Time       `json:"updatedAt" yaml:"updatedAt"`
}

// Store persists one Entry per subject. Implementations need only
// last-writer-wins semantics on independent subject overwrites; concurrent
// resolutions for the same browser build converge to the same answer.
type Store interface {
	// Load returns the entry for subject, or nil when none exists.
	Load(subject string) (*Entry, error)

	// Save upserts the entry for its subject.
	Save(entry *Entry) error

	// Delete removes the entry for subject. Removing an absent subject
	// is not an error.
	Delete(subject string) error

	// List returns all stored entries.
	List() ([]*Entry, error)

	// Close releases store resources.
	Close() error
}

// ResolveFunc produces a version through the network; invoked only on a
// cache miss.
type ResolveFunc func(ctx context.Context) (version.Version, error)

// Cache answers "which driver version was last resolved for this browser
// build" without a network round trip.
type Cache struct {
	store Store
}

// New creates a Cache over the given store.
func New(store Store) *Cache {
	return &Cache{store: store}
}

// Get returns the cached version for subject, but only when the stored
// browser build equals browserBuild. A stale entry is ignored, not deleted.
// Store read failures degrade to a miss so a broken cache file can never
// block resolution.
func (c *Cache) Get(subject string, browserBuild, localBuild version.Version) (version.Version, bool) {
	entry, err := c.store.Load(subject)
	if err != nil {
		slog.Warn("cache read failed, treating as miss", "subject", subject, "error", err)
		readFailures.Inc()
		return version.NoVersion, false
	}
	if entry == nil {
		misses.Inc()
		return version.NoVersion, false
	}

	if !entry.BrowserBuild.Equal(browserBuild) {
		slog.Debug("cache entry is for a different browser build",
			"subject", subject,
			"cached_browser_build", entry.BrowserBuild.String(),
			"current_browser_build", browserBuild.String(),
		)
		misses.Inc()
		return version.NoVersion, false
	}

	hits.Inc()
	return entry.Resolved, true
}

// Put upserts the resolution for subject, overwriting any prior entry.
func (c *Cache) Put(subject string, browserBuild, localBuild, resolved version.Version) error {
	return c.store.Save(&Entry{
		Subject:      subject,
		BrowserBuild: browserBuild,
		LocalBuild:   localBuild,
		Resolved:     resolved,
		UpdatedAt:    time.Now().UTC(),
	})
}

// WithCache is the canonical access pattern: consult the cache, invoke
// resolve on a miss, store the result, and return it. The second return
// value reports whether the answer came from the cache.
//
// A resolve failure propagates uncached. A store write failure is logged
// and the freshly resolved version returned anyway; resolution succeeded
// and the next call simply resolves again.
func (c *Cache) WithCache(ctx context.Context, subject string, localBuild, browserBuild version.Version, resolve ResolveFunc) (version.Version, bool, error) {
	if v, ok := c.Get(subject, browserBuild, localBuild); ok {
		return v, true, nil
	}

	v, err := resolve(ctx)
	if err != nil {
		return version.NoVersion, false, err
	}

	if putErr := c.Put(subject, browserBuild, localBuild, v); putErr != nil {
		slog.Warn("failed to persist resolved version",
			"subject", subject,
			"resolved", v.String(),
			"error", putErr,
		)
		writeFailures.Inc()
	}

	return v, false, nil
}
