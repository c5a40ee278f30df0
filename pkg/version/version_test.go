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

package version

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Version
	}{
		{
			name:     "empty input",
			input:    "",
			expected: NoVersion,
		},
		{
			name:     "no version present",
			input:    "Google Chrome",
			expected: NoVersion,
		},
		{
			name:     "bare integer is not a version",
			input:    "91",
			expected: NoVersion,
		},
		{
			name:     "two components",
			input:    "2.41",
			expected: Version{Major: 2, Minor: 41, Precision: 2},
		},
		{
			name:     "three components",
			input:    "70.0.3538",
			expected: Version{Major: 70, Minor: 0, Build: 3538, Precision: 3},
		},
		{
			name:     "four components",
			input:    "91.0.4472.101",
			expected: Version{Major: 91, Minor: 0, Build: 4472, Patch: 101, Precision: 4},
		},
		{
			name:     "ignores trailing release channel",
			input:    "91.0.4472.101 (stable)",
			expected: Version{Major: 91, Minor: 0, Build: 4472, Patch: 101, Precision: 4},
		},
		{
			name:     "ignores leading product name",
			input:    "Google Chrome 91.0.4472.114",
			expected: Version{Major: 91, Minor: 0, Build: 4472, Patch: 114, Precision: 4},
		},
		{
			name:     "first match wins",
			input:    "was 90.0.4430 now 91.0.4472",
			expected: Version{Major: 90, Minor: 0, Build: 4430, Precision: 3},
		},
		{
			name:     "chromium dev build banner",
			input:    "Chromium 92.0.4515.43 built on Debian 10.9",
			expected: Version{Major: 92, Minor: 0, Build: 4515, Patch: 43, Precision: 4},
		},
		{
			name:     "windows registry style value",
			input:    "version REG_SZ 89.0.4389.90",
			expected: Version{Major: 89, Minor: 0, Build: 4389, Patch: 90, Precision: 4},
		},
		{
			name:     "overflowing candidate is skipped",
			input:    "build 999999999999999999999.1 then 91.0.4472",
			expected: Version{Major: 91, Minor: 0, Build: 4472, Precision: 3},
		},
		{
			name:     "only overflowing candidates",
			input:    "999999999999999999999.999999999999999999999",
			expected: NoVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.expected {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuildVersion(t *testing.T) {
	full := MustParse("91.0.4472.101")
	build := full.BuildVersion()

	if build.String() != "91.0.4472" {
		t.Errorf("BuildVersion() = %q, want %q", build.String(), "91.0.4472")
	}

	// Truncation is idempotent.
	if build.BuildVersion() != build {
		t.Errorf("BuildVersion(BuildVersion(v)) = %+v, want %+v", build.BuildVersion(), build)
	}

	// NoVersion propagates.
	if !NoVersion.BuildVersion().IsZero() {
		t.Error("BuildVersion of NoVersion should remain NoVersion")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "equal full versions", a: "91.0.4472.101", b: "91.0.4472.101", expected: 0},
		{name: "numeric not string order", a: "9.0.100", b: "10.0.2", expected: -1},
		{name: "patch decides", a: "91.0.4472.100", b: "91.0.4472.101", expected: -1},
		{name: "build decides", a: "91.0.4471.0", b: "91.0.4472.0", expected: -1},
		{name: "absent below present", a: "91.0", b: "91.0.0", expected: -1},
		{name: "absent patch below zero patch", a: "91.0.4472", b: "91.0.4472.0", expected: -1},
		{name: "legacy below modern", a: "2.41", b: "70.0.0", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := MustParse(tt.a), MustParse(tt.b)
			if got := a.Compare(b); got != tt.expected {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
			if got := b.Compare(a); got != -tt.expected {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.expected)
			}
		})
	}
}

func TestNoVersionOrdering(t *testing.T) {
	real := MustParse("0.1")

	if !NoVersion.Less(real) {
		t.Error("NoVersion must sort below any real version")
	}
	if NoVersion.Equal(real) {
		t.Error("NoVersion must never equal a real version")
	}
	if !NoVersion.Equal(NoVersion) {
		t.Error("NoVersion must equal itself")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on input without a version")
		}
	}()
	MustParse("not a version")
}

func TestString(t *testing.T) {
	tests := []struct {
		input    Version
		expected string
	}{
		{input: NoVersion, expected: ""},
		{input: MustParse("2.41"), expected: "2.41"},
		{input: New(70, 0, 3538), expected: "70.0.3538"},
		{input: MustParse("91.0.4472.101"), expected: "91.0.4472.101"},
	}

	for _, tt := range tests {
		if got := tt.input.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		V Version `json:"v"`
	}

	in := wrapper{V: MustParse("91.0.4472.101")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"v":"91.0.4472.101"}` {
		t.Errorf("unexpected JSON form: %s", data)
	}

	var out wrapper
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.V.Equal(in.V) {
		t.Errorf("round trip changed version: %v != %v", out.V, in.V)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	type wrapper struct {
		V Version `yaml:"v"`
	}

	in := wrapper{V: MustParse("70.0.3538")}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out wrapper
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.V.Equal(in.V) {
		t.Errorf("round trip changed version: %v != %v", out.V, in.V)
	}
}
