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
	"github.com/webdrivers/godriver/pkg/platform"
	"github.com/webdrivers/godriver/pkg/version"
)

// ArchSuffixFunc decides the architecture suffix of a download artifact
// name. It is evaluated against the RESOLVED driver version, not the
// installed browser version, because the suffix marks when the driver
// itself started shipping the variant.
type ArchSuffixFunc func(resolved version.Version, host platform.Resolver) string

// Subject describes one driver family as configuration. All driver
// families share the single resolver implementation; nothing here is
// subclassed per driver.
type Subject struct {
	// Name is the driver identifier and on-disk base file name
	// ("chromedriver").
	Name string

	// BaseURL is the release index and download host.
	BaseURL string

	// ArtifactPrefix is the file base name inside download artifact names.
	ArtifactPrefix string

	// LegacyCutoff: browser builds below this predate published per-build
	// release indices and resolve to LegacyVersion without the network.
	LegacyCutoff version.Version

	// LegacyVersion is the fixed driver version for pre-cutoff browsers.
	LegacyVersion version.Version

	// ArchSuffix is the per-subject architecture suffix rule; nil means
	// no suffix ever applies.
	ArchSuffix ArchSuffixFunc
}

// chromedriver constants.
var (
	// chromedriverM1Floor is the first chromedriver release published as a
	// separate Apple Silicon artifact.
	chromedriverM1Floor = version.MustParse("87.0.4280.88")
)

// Chromedriver returns the subject configuration for Google Chrome's
// driver.
func Chromedriver() Subject {
	return Subject{
		Name:           "chromedriver",
		BaseURL:        "https://chromedriver.storage.googleapis.com",
		ArtifactPrefix: "chromedriver",
		LegacyCutoff:   version.New(70, 0, 0),
		LegacyVersion:  version.New(2, 41, 0),
		ArchSuffix: func(resolved version.Version, host platform.Resolver) string {
			if host.IsAppleSilicon() && !resolved.Less(chromedriverM1Floor) {
				return "_m1"
			}
			return ""
		},
	}
}
