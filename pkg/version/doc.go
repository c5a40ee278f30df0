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

// Package version provides parsing and ordered comparison of browser and
// driver version numbers.
//
// Browser version strings in the wild are noisy ("Google Chrome 91.0.4472.101
// (stable)"); Parse extracts the first dotted numeric substring and never
// fails, because the absence of a version is a representable value
// (NoVersion) rather than an error. Versions carry up to four components; truncation to the
// three-component build version (BuildVersion) identifies a release line for
// driver/browser pairing.
package version
