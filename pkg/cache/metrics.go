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

package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "godriver_cache_hits_total",
			Help: "Total number of version cache hits",
		},
	)
	misses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "godriver_cache_misses_total",
			Help: "Total number of version cache misses, including stale browser-build entries",
		},
	)
	readFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "godriver_cache_read_failures_total",
			Help: "Total number of cache store read failures degraded to misses",
		},
	)
	writeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "godriver_cache_write_failures_total",
			Help: "Total number of cache store write failures",
		},
	)
)
