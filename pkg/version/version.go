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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// pattern matches the first dotted numeric version substring anywhere in the
// input. At least major.minor must be present; build and patch are optional.
var pattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?(?:\.(\d+))?`)

// Version represents a driver or browser version number with up to four
// numeric components (Major.Minor.Build.Patch). Precision indicates how many
// components were present in the source string; a missing trailing component
// is absent, not zero, and sorts below any present component.
//
// The zero Version (Precision 0) is the NoVersion sentinel: a representable
// "no version" value for missing browsers, missing local binaries, and
// unparseable input. It never compares equal to a real version and always
// sorts lowest.
type Version struct {
	Major int `json:"major,omitempty" yaml:"major,omitempty"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Build int `json:"build,omitempty" yaml:"build,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Precision indicates how many components are significant (2, 3, or 4).
	// Zero marks the NoVersion sentinel.
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`
}

// NoVersion is the sentinel for an absent or unparseable version.
var NoVersion = Version{}

// New creates a three-component build Version. Use Parse for strings with
// more components.
func New(major, minor, build int) Version {
	return Version{
		Major:     major,
		Minor:     minor,
		Build:     build,
		Precision: 3,
	}
}

// Parse scans raw for the first parseable dotted numeric version substring
// and returns the parsed Version. Surrounding text such as product names,
// pre-release tags, and build metadata is ignored:
//
//	Parse("Google Chrome 91.0.4472.101 (stable)") // 91.0.4472.101
//
// A candidate whose component overflows int is skipped and scanning
// continues with the next candidate. Parse never fails: input with no
// parseable version, including the empty string, yields NoVersion.
func Parse(raw string) Version {
	for _, m := range pattern.FindAllStringSubmatch(raw, -1) {
		if v, ok := parseMatch(m); ok {
			return v
		}
	}
	return NoVersion
}

func parseMatch(m []string) (Version, bool) {
	var v Version
	for i, dst := range []*int{&v.Major, &v.Minor, &v.Build, &v.Patch} {
		part := m[i+1]
		if part == "" {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return NoVersion, false
		}
		*dst = n
		v.Precision = i + 1
	}
	return v, true
}

// MustParse parses a version string and panics on NoVersion. Only use this
// for hardcoded strings or test data known to contain a version.
func MustParse(raw string) Version {
	v := Parse(raw)
	if v.IsZero() {
		panic(fmt.Sprintf("MustParse: no version in %q", raw))
	}
	return v
}

// IsZero reports whether v is the NoVersion sentinel.
func (v Version) IsZero() bool {
	return v.Precision == 0
}

// String returns the dotted representation respecting precision, or the
// empty string for NoVersion.
func (v Version) String() string {
	switch v.Precision {
	case 0:
		return ""
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	case 3:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
	default:
		return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Patch)
	}
}

// BuildVersion truncates v to its first three components (major.minor.build),
// discarding patch. Two versions with equal BuildVersion belong to the same
// release line. NoVersion propagates unchanged.
func (v Version) BuildVersion() Version {
	if v.Precision <= 3 {
		return v
	}
	return Version{
		Major:     v.Major,
		Minor:     v.Minor,
		Build:     v.Build,
		Precision: 3,
	}
}

// components returns the ordered component values.
func (v Version) components() [4]int {
	return [4]int{v.Major, v.Minor, v.Build, v.Patch}
}

// Compare returns -1 if v < other, 0 if equal, and 1 if v > other.
// Components compare numerically in order; an absent trailing component
// sorts below any present value, so 91.0 < 91.0.0. NoVersion sorts below
// every real version.
func (v Version) Compare(other Version) int {
	a, b := v.components(), other.components()
	for i := 0; i < 4; i++ {
		aPresent, bPresent := i < v.Precision, i < other.Precision
		switch {
		case aPresent && bPresent:
			if a[i] != b[i] {
				if a[i] < b[i] {
					return -1
				}
				return 1
			}
		case aPresent:
			return 1
		case bPresent:
			return -1
		default:
			return 0
		}
	}
	return 0
}

// Less reports whether v sorts before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other denote the same version at the same
// precision. NoVersion is only equal to NoVersion.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// MarshalText encodes v as its dotted string form ("" for NoVersion) so
// versions round-trip through JSON as plain strings.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses the dotted string form produced by MarshalText.
func (v *Version) UnmarshalText(text []byte) error {
	*v = Parse(string(text))
	return nil
}

// MarshalYAML encodes v as its dotted string form.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML parses the dotted string form.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*v = Parse(strings.TrimSpace(s))
	return nil
}
