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

package defaults

import (
	"io/fs"
	"time"
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// Release index client limits.
const (
	// ReleaseIndexRatePerSecond caps release index requests per second.
	ReleaseIndexRatePerSecond = 5

	// ReleaseIndexRateBurst is the request burst allowance.
	ReleaseIndexRateBurst = 2
)

// Browser discovery limits.
const (
	// BrowserVersionTimeout bounds a single browser --version invocation.
	BrowserVersionTimeout = 10 * time.Second
)

// Cache storage settings.
const (
	// CacheFileMode is the permission set for the version cache file.
	CacheFileMode fs.FileMode = 0o600

	// CacheDirMode is the permission set for the cache directory.
	CacheDirMode fs.FileMode = 0o755

	// CacheDirName is the per-user directory holding cache state.
	CacheDirName = ".godriver"

	// CacheFileName is the YAML file holding cached version resolutions.
	CacheFileName = "versions.yaml"
)
