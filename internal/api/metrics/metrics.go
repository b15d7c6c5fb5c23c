// Package metrics defines and registers the custom Prometheus metrics of the
// clan gateway. It is the single source of truth for metric names, labels and
// help strings.
//
// Metrics register with the default registry on package init (promauto), so
// importing the package is enough.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clan_gateway"

// ── Snapshot metrics ─────────────────────────────────────────────────────────

// SnapshotsProcessedTotal counts roster snapshots by outcome.
// Label:
//   - result: "applied", "duplicate", "invalid" or "error"
var SnapshotsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshots_processed_total",
		Help:      "Total number of roster snapshots processed, by result.",
	},
	[]string{"result"},
)

// SnapshotDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss"
var SnapshotDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_dedup_total",
		Help:      "Total number of snapshot deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// SnapshotQueueDepth tracks snapshots waiting in each dispatcher worker channel.
var SnapshotQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "snapshot_queue_depth",
		Help:      "Current number of snapshots pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// SnapshotProcessingDuration measures a snapshot from dequeue to persistence.
var SnapshotProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "snapshot_processing_duration_seconds",
		Help:      "Duration of roster snapshot processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)

// ── Member metrics ───────────────────────────────────────────────────────────

// MemberFetchTotal counts member fetches delegated through clan aggregates.
// Labels:
//   - op: "fetch_member" or "fetch_members"
//   - result: "ok", "not_found" or "error"
var MemberFetchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "member_fetch_total",
		Help:      "Total number of member fetches, by operation and result.",
	},
	[]string{"op", "result"},
)

// MemberCacheTotal counts member cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var MemberCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "member_cache_total",
		Help:      "Total number of member cache lookups, by result.",
	},
	[]string{"result"},
)

// UnsupportedOperationsTotal counts requests for operations that need an
// authorized moderation flow.
var UnsupportedOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unsupported_operations_total",
		Help:      "Total number of rejected unsupported operations, by operation.",
	},
	[]string{"op"},
)
