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

package browser

import "context"

// Finder reports the raw version string of an installed browser.
//
// The returned string may be noisy ("Google Chrome 91.0.4472.101"); version
// extraction is the parser's concern. An absent browser is not an error:
// implementations return the empty string. Errors are reserved for failures
// interrogating a browser that does exist.
type Finder interface {
	InstalledVersion(ctx context.Context) (string, error)
}

// FinderFunc adapts a function to the Finder interface.
type FinderFunc func(ctx context.Context) (string, error)

// InstalledVersion implements Finder.
func (f FinderFunc) InstalledVersion(ctx context.Context) (string, error) {
	return f(ctx)
}

// Static returns a Finder that always reports the given raw version string.
// Useful for tests and for callers that already know the browser version.
func Static(raw string) Finder {
	return FinderFunc(func(context.Context) (string, error) {
		return raw, nil
	})
}
