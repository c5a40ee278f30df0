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
	"errors"
	"fmt"

	"github.com/webdrivers/godriver/pkg/version"
)

// FailureStage classifies where in the fallback chain a resolution died.
// Tests and callers branch on the stage, not on message prose.
type FailureStage string

const (
	// StageLookupFailed: the scoped lookup failed and the unscoped
	// fallback answered with a version at or beyond the requested build,
	// so the scoped entry is simply missing or unreachable.
	StageLookupFailed FailureStage = "lookup_failed"

	// StageBrowserAhead: the unscoped fallback answered with a version
	// older than the requested build; the installed browser is newer than
	// any released driver, which usually means a non-production browser
	// build.
	StageBrowserAhead FailureStage = "browser_ahead_of_releases"

	// StageNetworkFailure: both the scoped lookup and the unscoped
	// fallback failed with network errors.
	StageNetworkFailure FailureStage = "network_failure"
)

// pinGuidance is appended to every resolution failure so the user always
// sees a way out.
const pinGuidance = "pin a driver version explicitly (--pin flag or GODRIVER_PIN environment variable) to bypass the release index"

// ResolutionError is the terminal, user-facing failure of the version
// resolution fallback chain. It carries the stage tag for programmatic
// handling plus a human-readable detail.
type ResolutionError struct {
	Subject string
	Build   version.Version
	Stage   FailureStage
	Detail  string
	Cause   error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unable to determine %s version for browser build %s: %s; %s",
		e.Subject, e.Build.String(), e.Detail, pinGuidance)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// AsResolutionError extracts a ResolutionError from err's chain.
func AsResolutionError(err error) (*ResolutionError, bool) {
	var re *ResolutionError
	ok := errors.As(err, &re)
	return re, ok
}
