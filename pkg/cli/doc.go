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

// Package cli implements the command-line interface for the godriver tool.
//
// # Commands
//
// resolve - Determine the driver version for the installed browser:
//
//	godriver resolve [--browser-version 91.0.4472.114] [--pin 77.0.3865.40]
//
// Detects the installed Chrome browser (unless --browser-version supplies
// one), resolves the matching chromedriver version through the cache and
// the release index, and prints the version together with its download URL
// and executable name.
//
// check - Check an installed driver against the browser:
//
//	godriver check --driver-version 91.0.4472.101 [--browser-version 91.0.4472.114]
//
// Reports whether the installed driver binary can keep serving the
// current browser without a new download.
//
// cache - Inspect and manage the resolution cache:
//
//	godriver cache show
//	godriver cache clear [--subject chromedriver]
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default info)
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// # Environment Variables
//
//	GODRIVER_PIN           Pin an exact driver version
//	GODRIVER_INDEX_URL     Release index base URL override
//	GODRIVER_CACHE_STORE   Cache store backend: file, leveldb, memory
//	GODRIVER_CACHE_PATH    Cache location on disk
//	GODRIVER_CHROME_PATH   Explicit Chrome binary location
//	GODRIVER_LOG_LEVEL     Logging verbosity
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/webdrivers/godriver/pkg/cli.version=1.0.0'"
package cli
