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

package serializer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webdrivers/godriver/pkg/version"
)

type sample struct {
	Subject  string          `json:"subject" yaml:"subject"`
	Resolved version.Version `json:"resolved" yaml:"resolved"`
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	assert.Len(t, formats, 3)
	for _, f := range formats {
		assert.False(t, Format(f).IsUnknown())
	}
	assert.True(t, Format("xml").IsUnknown())
}

func TestWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(sample{
		Subject:  "chromedriver",
		Resolved: version.MustParse("91.0.4472.101"),
	}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "chromedriver", got["subject"])
	assert.Equal(t, "91.0.4472.101", got["resolved"])
}

func TestWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(sample{
		Subject:  "chromedriver",
		Resolved: version.MustParse("91.0.4472.101"),
	}))

	out := buf.String()
	assert.Contains(t, out, "subject: chromedriver")
	assert.Contains(t, out, "resolved: 91.0.4472.101")
}

func TestWriterTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(sample{
		Subject:  "chromedriver",
		Resolved: version.MustParse("91.0.4472.101"),
	}))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Subject")
	// Versions render as their string form, not per-component fields.
	assert.Contains(t, out, "91.0.4472.101")
	assert.NotContains(t, out, "Resolved.Major")
}

func TestWriterTableScalar(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize("91.0.4472.101"))
	assert.Contains(t, buf.String(), "value")
}

func TestWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	require.NoError(t, w.Serialize(map[string]string{"a": "b"}))
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewFileWriterOrStdout(FormatJSON, path)

	require.NoError(t, w.Serialize(sample{Subject: "chromedriver"}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))
}

func TestFileWriterEmptyPathFallsBackToStdout(t *testing.T) {
	w := NewFileWriterOrStdout(FormatJSON, "   ")
	assert.NoError(t, w.Close())
}
