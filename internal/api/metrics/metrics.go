// Package metrics defines and registers the custom Prometheus metrics of the
// todo API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "todo_api"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts signup and signin attempts.
// Labels:
//   - op: "signup" or "signin"
//   - result: "ok" or "rejected"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of signup/signin attempts, by operation and result.",
	},
	[]string{"op", "result"},
)

// ── Todo metrics ──────────────────────────────────────────────────────────────

var TodosCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "todos_created_total",
		Help:      "Total number of todos created.",
	},
)

var ManagersAssignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "managers_assigned_total",
		Help:      "Total number of managers assigned to todos.",
	},
)

var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments left on todos.",
	},
)

// ── Weather metrics ───────────────────────────────────────────────────────────

// WeatherLookupsTotal counts weather cache decisions.
// Label:
//   - result: "hit", "miss", or "error"
var WeatherLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weather_lookups_total",
		Help:      "Total number of weather lookups, labelled by cache result.",
	},
	[]string{"result"},
)

// ── Access log metrics ────────────────────────────────────────────────────────

// AccessLogQueueDepth tracks pending entries in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index
var AccessLogQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "access_log_queue_depth",
		Help:      "Current number of access log entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AccessLogErrorsTotal counts entries that could not be persisted.
var AccessLogErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_log_errors_total",
		Help:      "Total number of access log entries that failed to persist.",
	},
)
