// Copyright 2026 SirbennyAngel
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

package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type stateMetrics struct {
	ordinal               prometheus.Gauge
	gamesRegistered       prometheus.Counter
	assetsRegistered      prometheus.Counter
	traitCategories       prometheus.Counter
	capabilities          prometheus.Counter
	conversionRuleCreates prometheus.Counter
	conversionRuleDeletes prometheus.Counter
	opFailures            prometheus.Counter
}

func (m *stateMetrics) init(promRegistry prometheus.Registerer) {
	promautoFactory := promauto.With(promRegistry)
	m.ordinal = promautoFactory.NewGauge(prometheus.GaugeOpts{
		Name: "registry_metrics_ordinal_int",
		Help: "current registry sequence number",
	})
	m.gamesRegistered = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "registry_metrics_games_registered_total",
		Help: "total games registered since startup",
	})
	m.assetsRegistered = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "registry_metrics_assets_registered_total",
		Help: "total NFTs registered since startup",
	})
	m.traitCategories = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "registry_metrics_trait_categories_total",
		Help: "total trait categories registered since startup",
	})
	m.capabilities = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "registry_metrics_capabilities_total",
		Help: "total capabilities registered since startup",
	})
	m.conversionRuleCreates = promautoFactory.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_metrics_conversion_rules_created_total",
			Help: "total conversion rules created since startup",
		},
	)
	m.conversionRuleDeletes = promautoFactory.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_metrics_conversion_rules_deleted_total",
			Help: "total conversion rules deleted since startup",
		},
	)
	m.opFailures = promautoFactory.NewCounter(prometheus.CounterOpts{
		Name: "registry_metrics_operation_failures_total",
		Help: "total mutating operations rejected since startup",
	})
}
