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

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/webdrivers/godriver/pkg/defaults"
	gderrors "github.com/webdrivers/godriver/pkg/errors"
	"github.com/webdrivers/godriver/pkg/platform"
)

// ChromePathEnvVar overrides browser discovery with an explicit binary path.
const ChromePathEnvVar = "GODRIVER_CHROME_PATH"

// chromeCandidates lists well-known Chrome/Chromium install locations per
// OS family, checked in order after PATH lookup.
var chromeCandidates = map[platform.Family][]string{
	platform.FamilyMac: {
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
	},
	platform.FamilyLinux: {
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/snap/bin/chromium",
	},
	platform.FamilyWindows: {
		`C:\Program Files\Google\Chrome\Application\chrome.exe`,
		`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
	},
}

// pathNames are binary names probed on PATH, in preference order.
var pathNames = []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser"}

// ChromeFinder locates an installed Chrome or Chromium and reports its raw
// version string.
type ChromeFinder struct {
	host platform.Resolver

	// Swappable for tests.
	lookPath   func(name string) (string, error)
	statPath   func(path string) error
	runVersion func(ctx context.Context, path string) (string, error)
}

// ChromeOption configures a ChromeFinder.
type ChromeOption func(*ChromeFinder)

// WithHost overrides the platform resolver.
func WithHost(host platform.Resolver) ChromeOption {
	return func(f *ChromeFinder) {
		f.host = host
	}
}

// NewChromeFinder creates a Finder for Google Chrome / Chromium.
func NewChromeFinder(opts ...ChromeOption) *ChromeFinder {
	f := &ChromeFinder{
		host:     platform.NewHost(),
		lookPath: exec.LookPath,
		statPath: func(path string) error {
			_, err := os.Stat(path)
			return err
		},
	}
	f.runVersion = f.execVersion

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// InstalledVersion returns the raw version string of the installed browser,
// or the empty string when no browser is found.
func (f *ChromeFinder) InstalledVersion(ctx context.Context) (string, error) {
	path := f.locate()
	if path == "" {
		slog.Debug("no chrome installation found")
		return "", nil
	}

	raw, err := f.runVersion(ctx, path)
	if err != nil {
		return "", gderrors.WrapWithContext(gderrors.ErrCodeInternal,
			"querying browser version", err,
			map[string]any{"path": path})
	}

	raw = strings.TrimSpace(raw)
	slog.Debug("browser version detected", "path", path, "raw", raw)
	return raw, nil
}

// locate returns the first usable browser binary path, or "".
func (f *ChromeFinder) locate() string {
	if override := os.Getenv(ChromePathEnvVar); override != "" {
		if f.statPath(override) == nil {
			return override
		}
		slog.Warn("browser path override does not exist", "path", override)
		return ""
	}

	for _, name := range pathNames {
		if path, err := f.lookPath(name); err == nil {
			return path
		}
	}

	for _, path := range chromeCandidates[f.host.Family()] {
		if f.statPath(path) == nil {
			return path
		}
	}

	return ""
}

// execVersion runs the browser binary to obtain its version banner.
// Windows Chrome does not support --version; the file version resource is
// read through PowerShell instead.
func (f *ChromeFinder) execVersion(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.BrowserVersionTimeout)
	defer cancel()

	var cmd *exec.Cmd
	if f.host.Family() == platform.FamilyWindows {
		script := fmt.Sprintf("(Get-Item -Path %q).VersionInfo.ProductVersion", path)
		cmd = exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", script)
	} else {
		cmd = exec.CommandContext(ctx, path, "--version")
	}

	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
