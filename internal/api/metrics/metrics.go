// Package metrics defines and registers all custom Prometheus metrics for
// the MRP API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mrp"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "wrong_password", "not_found", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts newly created orders.
// Label:
//   - category: product category ("cpu", "apu", "embedded")
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by product category.",
	},
	[]string{"category"},
)

// ── Maintenance metrics ───────────────────────────────────────────────────────

// MaintenanceRequestsTotal counts opened maintenance requests.
// Label:
//   - priority: "low", "medium", "high", "critical"
var MaintenanceRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "maintenance_requests_total",
		Help:      "Total number of maintenance requests opened, by priority.",
	},
	[]string{"priority"},
)

// ── Stock movement metrics ────────────────────────────────────────────────────

// MovementsProcessedTotal counts movements that completed processing.
// Labels:
//   - type: "inbound", "consumption", "adjustment"
//   - source: who produced the movement (e.g. "order_intake")
var MovementsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movements_processed_total",
		Help:      "Total number of stock movements successfully applied.",
	},
	[]string{"type", "source"},
)

// MovementsErrorsTotal counts movements that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "unknown_sku", "audit_failed")
var MovementsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movements_errors_total",
		Help:      "Total number of stock movements that failed processing.",
	},
	[]string{"reason"},
)

// MovementsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new movement, processed)
var MovementsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "movements_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// MovementQueueDepth tracks the current number of movements waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MovementQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "movement_queue_depth",
		Help:      "Current number of movements pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// MovementProcessingDuration measures how long a single movement takes end-to-end.
// Label:
//   - type: the movement type
var MovementProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "movement_processing_duration_seconds",
		Help:      "Duration of movement processing from dequeue to audit.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"type"},
)
