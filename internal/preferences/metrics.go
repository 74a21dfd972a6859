// Mensa Recommender - Canteen Menus and Meal Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mensarec

package preferences

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the preference store
var (
	// storeOperations counts store calls by operation and result.
	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "preference_store_operations_total",
			Help: "Total number of preference store operations",
		},
		[]string{"operation", "result"}, // operation: get, update; result: success, not_found, error
	)

	// storeWrites counts records actually persisted. No-op mutations are excluded.
	storeWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "preference_store_writes_total",
		Help: "Total number of preference records written",
	})

	// storeConflicts counts transactions re-run after a conflict.
	storeConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "preference_store_conflicts_total",
		Help: "Total number of preference transactions re-run after a write conflict",
	})

	// storeGCRuns counts value-log GC passes.
	storeGCRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "preference_store_gc_runs_total",
		Help: "Total number of preference store value log GC runs",
	})

	// storeGCLatency measures one full GC pass.
	storeGCLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "preference_store_gc_latency_seconds",
		Help:    "Preference store value log GC latency in seconds",
		Buckets: prometheus.DefBuckets,
	})
)
