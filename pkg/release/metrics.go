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

package release

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomePrimary        = "primary"
	outcomeBadBody        = "unparseable_body"
	outcomeBrowserAhead   = "browser_ahead"
	outcomeLookupFailed   = "lookup_failed"
	outcomeNetworkFailure = "network_failure"
)

var (
	lookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "godriver_release_lookup_duration_seconds",
			Help:    "Duration of successful scoped release index lookups in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
	lookupOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "godriver_release_lookups_total",
			Help: "Total release index lookups by outcome",
		},
		[]string{"outcome"},
	)
)
