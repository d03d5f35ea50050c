// Package metrics provides Prometheus metrics for the matchd service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the matching service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Pool metrics
	mentorCount       prometheus.Gauge
	menteeCount       prometheus.Gauge
	participantsSaved prometheus.Counter

	// Engine metrics
	matrixBuilds          prometheus.Counter
	matrixBuildDuration   prometheus.Histogram
	matrixErrors          prometheus.Counter
	assignmentRuns        prometheus.Counter
	assignmentRunDuration prometheus.Histogram
	assignmentPairs       prometheus.Gauge
	assignmentUnmatched   prometheus.Gauge
	matchQueries          prometheus.Counter
	matchQueryMisses      prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "matchd",
		subsystem:        "matching",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.mentorCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "mentor_count",
		Help:      "Current number of mentors in the participant pool",
	})

	m.menteeCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "mentee_count",
		Help:      "Current number of mentees in the participant pool",
	})

	m.participantsSaved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "participants_saved_total",
		Help:      "Total number of participant survey submissions saved",
	})

	m.matrixBuilds = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matrix_builds_total",
		Help:      "Total number of compatibility matrix builds",
	})

	m.matrixBuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matrix_build_duration_milliseconds",
		Help:      "Histogram of compatibility matrix build duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.matrixErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matrix_errors_total",
		Help:      "Total number of failed matrix builds (dimension inconsistency)",
	})

	m.assignmentRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "assignment_runs_total",
		Help:      "Total number of event-wide assignment runs",
	})

	m.assignmentRunDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "assignment_run_duration_milliseconds",
		Help:      "Histogram of assignment solver run duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.assignmentPairs = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "assignment_pairs",
		Help:      "Number of matched pairs produced by the last assignment run",
	})

	m.assignmentUnmatched = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "assignment_unmatched",
		Help:      "Number of participants left unmatched by the last assignment run",
	})

	m.matchQueries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_queries_total",
		Help:      "Total number of per-participant top-N match queries",
	})

	m.matchQueryMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_query_misses_total",
		Help:      "Total number of match queries for unknown participant ids",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// UpdatePoolSizes sets the current mentor and mentee pool sizes.
func UpdatePoolSizes(mentors, mentees int) {
	globalManager.mentorCount.Set(float64(mentors))
	globalManager.menteeCount.Set(float64(mentees))
}

// RecordParticipantSaved increments the saved-submission counter.
func RecordParticipantSaved() {
	globalManager.participantsSaved.Inc()
}

// RecordMatrixBuild records one matrix build and its duration.
func RecordMatrixBuild(durationMs float64) {
	globalManager.matrixBuilds.Inc()
	globalManager.matrixBuildDuration.Observe(durationMs)
}

// RecordMatrixError increments the failed-build counter.
func RecordMatrixError() {
	globalManager.matrixErrors.Inc()
}

// RecordAssignmentRun records one assignment run with its outcome.
func RecordAssignmentRun(durationMs float64, pairs, unmatched int) {
	globalManager.assignmentRuns.Inc()
	globalManager.assignmentRunDuration.Observe(durationMs)
	globalManager.assignmentPairs.Set(float64(pairs))
	globalManager.assignmentUnmatched.Set(float64(unmatched))
}

// RecordMatchQuery increments the match-query counter.
func RecordMatchQuery() {
	globalManager.matchQueries.Inc()
}

// RecordMatchQueryMiss increments the unknown-participant counter.
func RecordMatchQueryMiss() {
	globalManager.matchQueryMisses.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
