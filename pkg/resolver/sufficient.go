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

// strictMatchFloor is the first driver release line that requires
// browser/driver build alignment. Driver lines older than this predate the
// alignment scheme and remain usable against any browser.
var strictMatchFloor = version.New(70, 0, 3538)

// Sufficient reports whether an already-installed driver binary is still
// usable for the current browser.
//
// A binary older than 70.0.3538 predates per-build pairing and is exempt
// from build alignment entirely. Anything newer must match the browser's
// build version exactly, all three components.
func Sufficient(existing, currentBuild, browserBuild version.Version) bool {
	if existing.IsZero() {
		return false
	}
	if existing.Less(strictMatchFloor) {
		return true
	}
	return currentBuild.Equal(browserBuild)
}
