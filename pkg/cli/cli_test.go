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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/webdrivers/godriver/pkg/serializer"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		format  string
		want    serializer.Format
		wantErr bool
	}{
		{"yaml", serializer.FormatYAML, false},
		{"json", serializer.FormatJSON, false},
		{"table", serializer.FormatTable, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			var got serializer.Format
			var gotErr error
			cmd := &cli.Command{
				Flags: []cli.Flag{formatFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					got, gotErr = parseFormat(cmd)
					return nil
				},
			}
			args := []string{"test"}
			if tt.format != "" {
				args = append(args, "--format", tt.format)
			} else {
				args = append(args, "--format", "")
			}
			require.NoError(t, cmd.Run(t.Context(), args))

			if tt.wantErr {
				assert.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewStore(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"memory", []string{"--store", "memory"}, false},
		{"file with path", []string{"--store", "file", "--cache-path", filepath.Join(dir, "v.yaml")}, false},
		{"leveldb with path", []string{"--store", "leveldb", "--cache-path", filepath.Join(dir, "db")}, false},
		{"leveldb without path", []string{"--store", "leveldb"}, true},
		{"unknown backend", []string{"--store", "bolt"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotErr error
			cmd := &cli.Command{
				Flags: []cli.Flag{storeFlag, cachePathFlag},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					store, err := newStore(cmd)
					gotErr = err
					if store != nil {
						closeStore(store)
					}
					return nil
				},
			}
			require.NoError(t, cmd.Run(t.Context(), append([]string{"test"}, tt.args...)))

			if tt.wantErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
		})
	}
}

func TestResolveCommandEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/LATEST_RELEASE_91.0.4472" {
			fmt.Fprint(w, "91.0.4472.101")
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	outPath := filepath.Join(t.TempDir(), "out.json")
	cachePath := filepath.Join(t.TempDir(), "versions.yaml")

	err := rootCmd().Run(t.Context(), []string{
		"godriver", "resolve",
		"--browser-version", "91.0.4472.114",
		"--index-url", srv.URL,
		"--store", "file",
		"--cache-path", cachePath,
		"--format", "json",
		"--output", outPath,
	})
	require.NoError(t, err)

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)

	var out resolveOutput
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "chromedriver", out.Subject)
	assert.Equal(t, "91.0.4472.101", out.Resolved.String())
	assert.Contains(t, out.DownloadURL, "/91.0.4472.101/chromedriver_")
	// The output reports the browser version as supplied, not truncated
	// to its build line.
	assert.Equal(t, "91.0.4472.114", out.BrowserVersion.String())
}

func TestResolveCommandPinned(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")

	err := rootCmd().Run(t.Context(), []string{
		"godriver", "resolve",
		"--pin", "77.0.3865.40",
		"--store", "memory",
		"--format", "json",
		"--output", outPath,
	})
	require.NoError(t, err)

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)

	var out resolveOutput
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "77.0.3865.40", out.Resolved.String())
	assert.Equal(t, "pinned", string(out.Source))
}

func TestCheckCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")

	err := rootCmd().Run(t.Context(), []string{
		"godriver", "check",
		"--driver-version", "2.46.628388",
		"--browser-version", "91.0.4472.114",
		"--format", "json",
		"--output", outPath,
	})
	require.NoError(t, err)

	data, readErr := os.ReadFile(outPath)
	require.NoError(t, readErr)

	var out checkOutput
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.Sufficient)
}
