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

package platform

import (
	"runtime"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v4/host"
)

// Family is the coarse OS family used in artifact naming.
type Family string

const (
	FamilyWindows Family = "win"
	FamilyMac     Family = "mac"
	FamilyLinux   Family = "linux"
)

// Resolver maps the host OS and architecture to the artifact naming segments
// used in driver download URLs.
type Resolver interface {
	// Family returns the OS family (win, mac, linux).
	Family() Family

	// Segment returns the platform segment of the download artifact name
	// (win32, mac64, linux64).
	Segment() string

	// IsWSL reports whether a Linux host is running under the Windows
	// Subsystem for Linux.
	IsWSL() bool

	// IsAppleSilicon reports whether the host is an arm64 Mac.
	IsAppleSilicon() bool

	// ExecutableName returns the on-disk driver file name for subject:
	// "{subject}.exe" on Windows and WSL, bare "{subject}" otherwise.
	ExecutableName(subject string) string
}

// Host resolves platform attributes from the running process environment.
// Zero value is not usable; create with NewHost.
type Host struct {
	goos   string
	goarch string

	// kernelVersion is swappable for tests.
	kernelVersion func() (string, error)

	wslOnce sync.Once
	wsl     bool
}

// NewHost creates a Resolver for the current process.
func NewHost() *Host {
	return &Host{
		goos:          runtime.GOOS,
		goarch:        runtime.GOARCH,
		kernelVersion: host.KernelVersion,
	}
}

// Family returns the coarse OS family. Anything that is not Windows or
// macOS resolves to linux, matching the artifact naming of the release
// index.
func (h *Host) Family() Family {
	switch h.goos {
	case "windows":
		return FamilyWindows
	case "darwin":
		return FamilyMac
	default:
		return FamilyLinux
	}
}

// Segment returns the platform artifact segment.
func (h *Host) Segment() string {
	switch h.Family() {
	case FamilyWindows:
		return "win32"
	case FamilyMac:
		return "mac64"
	default:
		return "linux64"
	}
}

// IsWSL reports whether a Linux host runs under WSL, detected from the
// kernel version string. The answer cannot change within a process, so it
// is computed once.
func (h *Host) IsWSL() bool {
	h.wslOnce.Do(func() {
		if h.goos != "linux" {
			return
		}
		kv, err := h.kernelVersion()
		if err != nil {
			// Detection failure degrades to non-WSL; only the executable
			// file extension depends on it.
			return
		}
		h.wsl = strings.Contains(strings.ToLower(kv), "microsoft")
	})
	return h.wsl
}

// IsAppleSilicon reports whether the host is an arm64 Mac.
func (h *Host) IsAppleSilicon() bool {
	return h.goos == "darwin" && h.goarch == "arm64"
}

// ExecutableName returns the driver executable file name for this host.
func (h *Host) ExecutableName(subject string) string {
	if h.Family() == FamilyWindows || h.IsWSL() {
		return subject + ".exe"
	}
	return subject
}
