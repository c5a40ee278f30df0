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
	"github.com/webdrivers/godriver/pkg/version"
)

// Source identifies where a resolved version came from.
type Source string

const (
	// SourcePinned: the user pinned an explicit version; no cache or
	// network interaction occurred.
	SourcePinned Source = "pinned"

	// SourceCache: served from the version cache for the current browser
	// build.
	SourceCache Source = "cache"

	// SourceNetworkPrimary: freshly resolved against the scoped release
	// index entry.
	SourceNetworkPrimary Source = "network-primary"

	// SourceNetworkFallback: resolved through an unscoped index fallback.
	// Subjects whose fallback can rescue a resolution use this; the
	// chromedriver index fallback is diagnostic-only and never produces it.
	SourceNetworkFallback Source = "network-fallback"

	// SourceHardcodedLegacy: the browser build predates published
	// per-build release indices; the subject's fixed legacy driver
	// version applies.
	SourceHardcodedLegacy Source = "hardcoded-legacy"
)

// Request carries everything resolution depends on besides the network.
type Request struct {
	// Pinned is an explicit user-required version; NoVersion when unset.
	Pinned version.Version `json:"pinned,omitempty" yaml:"pinned,omitempty"`

	// BrowserBuild is the installed browser's three-component build version.
	BrowserBuild version.Version `json:"browserBuild" yaml:"browserBuild"`

	// LocalBuild is the installed driver binary's build version;
	// NoVersion when no driver is installed.
	LocalBuild version.Version `json:"localBuild,omitempty" yaml:"localBuild,omitempty"`

	// LocalVersion is the installed driver binary's full version;
	// NoVersion when no driver is installed.
	LocalVersion version.Version `json:"localVersion,omitempty" yaml:"localVersion,omitempty"`
}

// Result is the answer to "which driver version should be active".
type Result struct {
	Version version.Version `json:"version" yaml:"version"`
	Source  Source          `json:"source" yaml:"source"`
}
