// Package metrics defines and registers all custom Prometheus metrics for the
// Hercules API key service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Collectors are registered with the default Prometheus registry on import
// (promauto) and exposed on /metrics next to the HTTP metrics produced by
// the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hercules"

// ── Authentication metrics ────────────────────────────────────────────────────

// AuthOutcomesTotal counts API key verifications.
// Label:
//   - outcome: "ok", or the failed step ("malformed", "unresolvable_id",
//     "unknown_principal", "mismatch", "identity_binding", "expired",
//     "disabled", "missing", "throttled")
//
// The outcome never reaches the client, which only sees 403.
var AuthOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_outcomes_total",
		Help:      "Total number of API key verifications, by outcome.",
	},
	[]string{"outcome"},
)

// PermissionDeniedTotal counts requests rejected by the permission gate.
// Label:
//   - module: the module the route requires (e.g. "EDICTOS")
var PermissionDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_denied_total",
		Help:      "Total number of requests denied for insufficient module level.",
	},
	[]string{"module"},
)

// ── Envelope metrics ──────────────────────────────────────────────────────────

// EnvelopesTotal counts list and detail responses.
// Labels:
//   - resource: the collection served (e.g. "autoridades")
//   - result: "success", "empty", "not_found", "inactive" or "invalid"
var EnvelopesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "envelopes_total",
		Help:      "Total number of list/detail envelopes rendered, by resource and result.",
	},
	[]string{"resource", "result"},
)

// ── Access log metrics ────────────────────────────────────────────────────────

// AccessLogQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AccessLogQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "access_log_queue_depth",
		Help:      "Current number of access events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AccessLogDroppedTotal counts events discarded because their shard was full.
var AccessLogDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_log_dropped_total",
		Help:      "Total number of access events dropped on a full dispatcher shard.",
	},
)

// AccessLogWriteDuration measures how long persisting one access event takes.
// Label:
//   - outcome: "ok" or "error"
var AccessLogWriteDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "access_log_write_duration_seconds",
		Help:      "Duration of access event persistence from dequeue to insert.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"outcome"},
)
