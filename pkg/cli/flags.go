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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/webdrivers/godriver/pkg/cache"
	"github.com/webdrivers/godriver/pkg/serializer"
)

// Cache store backends selectable with --store.
const (
	storeFile    = "file"
	storeLevelDB = "leveldb"
	storeMemory  = "memory"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("output format (supported values: %s)", serializer.SupportedFormats()),
		Value:   string(serializer.FormatYAML),
	}

	storeFlag = &cli.StringFlag{
		Name:    "store",
		Usage:   "cache store backend (file, leveldb, memory)",
		Sources: cli.EnvVars("GODRIVER_CACHE_STORE"),
		Value:   storeFile,
	}

	cachePathFlag = &cli.StringFlag{
		Name:    "cache-path",
		Usage:   "cache location (default: ~/.godriver/versions.yaml, or a directory for leveldb)",
		Sources: cli.EnvVars("GODRIVER_CACHE_PATH"),
	}
)

// parseFormat validates the --format flag value.
func parseFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported values: %s)",
			f, serializer.SupportedFormats())
	}
	return f, nil
}

// newStore builds the cache store selected by --store and --cache-path.
func newStore(cmd *cli.Command) (cache.Store, error) {
	path := cmd.String("cache-path")

	switch backend := cmd.String("store"); backend {
	case storeMemory:
		return cache.NewMemoryStore(), nil
	case storeLevelDB:
		if path == "" {
			return nil, fmt.Errorf("--cache-path is required with the leveldb store")
		}
		store, err := cache.NewLevelStore(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open leveldb cache at %q: %w", path, err)
		}
		return store, nil
	case storeFile:
		if path == "" {
			var err error
			path, err = cache.DefaultPath()
			if err != nil {
				return nil, fmt.Errorf("failed to determine default cache path: %w", err)
			}
		}
		return cache.NewFileStore(path), nil
	default:
		return nil, fmt.Errorf("unknown cache store: %q (supported values: file, leveldb, memory)", backend)
	}
}
