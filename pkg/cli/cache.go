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

	"github.com/webdrivers/godriver/pkg/cache"
	"github.com/webdrivers/godriver/pkg/serializer"
)

func cacheCmd() *cli.Command {
	return &cli.Command{
		Name:                  "cache",
		EnableShellCompletion: true,
		Usage:                 "Inspect and manage the resolved version cache",
		Commands: []*cli.Command{
			cacheShowCmd(),
			cacheClearCmd(),
		},
	}
}

func cacheShowCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "List cached version resolutions",
		Flags: []cli.Flag{
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

			store, err := newStore(cmd)
			if err != nil {
				return err
			}
			defer closeStore(store)

			entries, err := store.List()
			if err != nil {
				return fmt.Errorf("failed to list cache entries: %w", err)
			}

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := w.Close(); err != nil {
					slog.Warn("failed to close output writer", "error", err)
				}
			}()

			return w.Serialize(entries)
		},
	}
}

func cacheClearCmd() *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Remove cached version resolutions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "subject",
				Usage: "remove only the entry for this subject (default: all)",
			},
			storeFlag,
			cachePathFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store, err := newStore(cmd)
			if err != nil {
				return err
			}
			defer closeStore(store)

			if subject := cmd.String("subject"); subject != "" {
				if err := store.Delete(subject); err != nil {
					return fmt.Errorf("failed to remove cache entry for %q: %w", subject, err)
				}
				return nil
			}

			entries, err := store.List()
			if err != nil {
				return fmt.Errorf("failed to list cache entries: %w", err)
			}
			for _, entry := range entries {
				if err := store.Delete(entry.Subject); err != nil {
					return fmt.Errorf("failed to remove cache entry for %q: %w", entry.Subject, err)
				}
			}
			return nil
		},
	}
}

func closeStore(store cache.Store) {
	if err := store.Close(); err != nil {
		slog.Warn("failed to close cache store", "error", err)
	}
}
