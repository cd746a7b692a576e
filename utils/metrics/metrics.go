// Package metrics provides Prometheus metrics for the recompute service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TicksTotal counts dispatcher ticks by outcome.
	TicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "toolbox",
			Name:      "ticks_total",
			Help:      "Total number of dispatcher ticks",
		},
		[]string{"status"},
	)

	// ActionRunsTotal counts maintenance action invocations.
	ActionRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "toolbox",
			Name:      "action_runs_total",
			Help:      "Total number of maintenance action invocations",
		},
		[]string{"action", "status"},
	)

	// ActionDuration measures maintenance action duration.
	ActionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "toolbox",
			Name:      "action_duration_seconds",
			Help:      "Duration of maintenance actions in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"action"},
	)

	// TasksEnqueuedTotal counts tasks handed to the queue.
	TasksEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "toolbox",
			Name:      "tasks_enqueued_total",
			Help:      "Total number of tasks enqueued",
		},
		[]string{"task", "status"},
	)

	// TasksHandledTotal counts tasks processed by the worker.
	TasksHandledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "toolbox",
			Name:      "tasks_handled_total",
			Help:      "Total number of tasks handled by the worker",
		},
		[]string{"task", "status"},
	)

	// TrendEntries observes the size of the last persisted ranking.
	TrendEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "toolbox",
			Name:      "trend_entries",
			Help:      "Number of entries in the most recently persisted trend ranking",
		},
	)

	// ReportedErrorsTotal counts errors handed to the error reporter.
	ReportedErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "toolbox",
			Name:      "reported_errors_total",
			Help:      "Total number of errors reported to operators",
		},
		[]string{"error_code"},
	)
)

// RecordAction records one action invocation.
func RecordAction(action, status string, duration float64) {
	ActionRunsTotal.WithLabelValues(action, status).Inc()
	ActionDuration.WithLabelValues(action).Observe(duration)
}

// RecordTick records a finished tick.
func RecordTick(status string) {
	TicksTotal.WithLabelValues(status).Inc()
}

// RecordEnqueue records a task enqueue attempt.
func RecordEnqueue(task, status string) {
	TasksEnqueuedTotal.WithLabelValues(task, status).Inc()
}

// RecordTaskHandled records a worker task outcome.
func RecordTaskHandled(task, status string) {
	TasksHandledTotal.WithLabelValues(task, status).Inc()
}

// RecordReportedError records an error handed to operators.
func RecordReportedError(code string) {
	ReportedErrorsTotal.WithLabelValues(code).Inc()
}

// SetTrendEntries sets the size of the last persisted ranking.
func SetTrendEntries(n int) {
	TrendEntries.Set(float64(n))
}
