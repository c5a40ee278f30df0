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

	"github.com/webdrivers/godriver/pkg/resolver"
	"github.com/webdrivers/godriver/pkg/serializer"
	ver "github.com/webdrivers/godriver/pkg/version"
)

// checkOutput is the serialized result of the check command.
type checkOutput struct {
	Subject        string      `json:"subject" yaml:"subject"`
	DriverVersion  ver.Version `json:"driverVersion" yaml:"driverVersion"`
	BrowserVersion ver.Version `json:"browserVersion" yaml:"browserVersion"`
	Sufficient     bool        `json:"sufficient" yaml:"sufficient"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Check whether an installed driver still matches the browser",
		Description: `Check whether an already-installed driver binary can keep serving the
installed browser, or whether a fresh driver download is needed.

Driver versions from before build-aligned releases are accepted against
any browser; newer drivers must match the browser's build version.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "driver-version",
				Usage:    "version reported by the installed driver binary",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "browser-version",
				Usage: "browser version to check against (default: detect installed browser)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseFormat(cmd)
			if err != nil {
				return err
			}

			raw := cmd.String("driver-version")
			driver := ver.Parse(raw)
			if driver.IsZero() {
				return fmt.Errorf("invalid driver version: %q", raw)
			}

			browserVersion, err := installedBrowserVersion(ctx, cmd)
			if err != nil {
				return err
			}

			out := checkOutput{
				Subject:        resolver.Chromedriver().Name,
				DriverVersion:  driver,
				BrowserVersion: browserVersion,
				Sufficient: resolver.Sufficient(
					driver,
					driver.BuildVersion(),
					browserVersion.BuildVersion(),
				),
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
