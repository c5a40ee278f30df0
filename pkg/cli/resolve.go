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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/webdrivers/godriver/pkg/browser"
	"github.com/webdrivers/godriver/pkg/cache"
	"github.com/webdrivers/godriver/pkg/release"
	"github.com/webdrivers/godriver/pkg/resolver"
	"github.com/webdrivers/godriver/pkg/serializer"
	ver "github.com/webdrivers/godriver/pkg/version"
)

// resolveOutput is the serialized result of the resolve command.
type resolveOutput struct {
	Subject        string          `json:"subject" yaml:"subject"`
	BrowserVersion ver.Version     `json:"browserVersion,omitempty" yaml:"browserVersion,omitempty"`
	Resolved       ver.Version     `json:"resolved" yaml:"resolved"`
	Source         resolver.Source `json:"source" yaml:"source"`
	DownloadURL    string          `json:"downloadUrl" yaml:"downloadUrl"`
	Executable     string          `json:"executable" yaml:"executable"`
}

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "resolve",
		EnableShellCompletion: true,
		Usage:                 "Resolve the driver version matching the installed browser",
		Description: `Resolve the chromedriver version that matches the locally installed
Chrome browser and print it together with its download URL.

The browser version is detected by querying the installed browser binary;
use --browser-version to supply it directly. A pinned version with --pin
(or GODRIVER_PIN) wins over everything and requires no browser or network.

Resolutions are cached per browser build. A cached answer is reused until
the browser itself upgrades to a different build.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "pin",
				Usage:   "pin an exact driver version; skips detection, cache, and network",
				Sources: cli.EnvVars("GODRIVER_PIN"),
			},
			&cli.StringFlag{
				Name:  "browser-version",
				Usage: "browser version to resolve for (default: detect installed browser)",
			},
			&cli.StringFlag{
				Name:    "index-url",
				Usage:   "release index base URL override (e.g., an internal mirror)",
				Sources: cli.EnvVars("GODRIVER_INDEX_URL"),
			},
			storeFlag,
			cachePathFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseFormat(cmd)
			if err != nil {
				return err
			}

			subject := resolver.Chromedriver()
			if u := cmd.String("index-url"); u != "" {
				subject.BaseURL = u
			}

			req := resolver.Request{
				Pinned: ver.Parse(cmd.String("pin")),
			}

			var browserVersion ver.Version
			if req.Pinned.IsZero() {
				browserVersion, err = installedBrowserVersion(ctx, cmd)
				if err != nil {
					return err
				}
				req.BrowserBuild = browserVersion.BuildVersion()
			}

			store, err := newStore(cmd)
			if err != nil {
				return err
			}
			defer closeStore(store)

			r := resolver.New(subject,
				resolver.WithCache(cache.New(store)),
				resolver.WithIndexClient(release.New(subject.Name, subject.BaseURL)),
			)

			res, err := r.Resolve(ctx, req)
			if err != nil {
				return err
			}

			out := resolveOutput{
				Subject:        subject.Name,
				Resolved:       res.Version,
				Source:         res.Source,
				DownloadURL:    r.DownloadURL(res.Version),
				Executable:     r.ExecutableName(),
				BrowserVersion: browserVersion,
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := w.Close(); err != nil {
					slog.Warn("failed to close output writer", "error", err)
				}
			}()

			return w.Serialize(out)
		},
	}
}

// installedBrowserVersion returns the browser version to resolve against,
// from the --browser-version flag or by querying the installed browser.
func installedBrowserVersion(ctx context.Context, cmd *cli.Command) (ver.Version, error) {
	if raw := cmd.String("browser-version"); raw != "" {
		v := ver.Parse(raw)
		if v.IsZero() {
			return ver.NoVersion, fmt.Errorf("invalid browser version: %q", raw)
		}
		return v, nil
	}

	raw, err := browser.NewChromeFinder().InstalledVersion(ctx)
	if err != nil {
		return ver.NoVersion, fmt.Errorf("failed to detect installed browser: %w", err)
	}

	v := ver.Parse(raw)
	if v.IsZero() {
		return ver.NoVersion, fmt.Errorf("could not parse browser version from %q", raw)
	}

	slog.Debug("detected installed browser", "version", v.String())
	return v, nil
}
