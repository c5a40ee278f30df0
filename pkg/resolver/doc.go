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

// Package resolver orchestrates driver version resolution.
//
// A single Resolver implementation serves every driver family; the
// per-family differences (release index host, artifact naming, legacy
// cutoff) live in a Subject configuration value. Resolution precedence is
// pinned version, then hardcoded legacy version for pre-index browsers,
// then the cache backed by the release index.
package resolver
