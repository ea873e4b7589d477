// Package metrics provides Prometheus metrics for the Pathway career service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the Pathway service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Core Business Metrics - skill-gap analysis is what the service is for
	analysesTotal       prometheus.Counter
	analysesUnknownRole prometheus.Counter
	missingSkillsCount  prometheus.Histogram
	roadmapLookups      prometheus.Counter

	// News Gateway Metrics - upstream dependency health
	newsFetches      prometheus.Counter
	newsFetchErrors  prometheus.Counter
	newsItemsDropped prometheus.Counter
	newsFetchLatency prometheus.Histogram

	// Journal Metrics - best-effort input log health
	journalWrites      prometheus.Counter
	journalWriteErrors prometheus.Counter
	journalDropped     prometheus.Counter
	journalQueueDepth  prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
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
		namespace:        "pathway",
		subsystem:        "careers",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Core Business Metrics
	m.analysesTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "skill_gap_analyses_total",
		Help:      "Total number of skill-gap analyses served",
	})

	m.analysesUnknownRole = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "skill_gap_unknown_role_total",
		Help:      "Total number of skill-gap requests rejected for an unknown role",
	})

	m.missingSkillsCount = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "skill_gap_missing_skills",
		Help:      "Distribution of missing-skill counts per analysis",
		Buckets:   []float64{0, 1, 2, 3, 4, 5, 8, 10},
	})

	m.roadmapLookups = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roadmap_lookups_total",
		Help:      "Total number of roadmap lookups served",
	})

	// News Gateway Metrics
	m.newsFetches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "news_fetches_total",
		Help:      "Total number of top-story fetches against the upstream ranking service",
	})

	m.newsFetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "news_fetch_errors_total",
		Help:      "Total number of failed top-story fetches (upstream unavailable)",
	})

	m.newsItemsDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "news_items_dropped_total",
		Help:      "Total number of upstream items dropped (non-story type or item fetch failure)",
	})

	m.newsFetchLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "news_fetch_latency_milliseconds",
		Help:      "Histogram of whole news fetch latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// Journal Metrics
	m.journalWrites = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "journal_writes_total",
		Help:      "Total number of journal entries persisted",
	})

	m.journalWriteErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "journal_write_errors_total",
		Help:      "Total number of journal write failures (swallowed, never user-visible)",
	})

	m.journalDropped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "journal_dropped_total",
		Help:      "Total number of journal entries dropped on a full write queue",
	})

	m.journalQueueDepth = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "journal_queue_depth",
		Help:      "Current depth of the journal write queue",
	})

	// HTTP Performance Metrics
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

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of error responses by endpoint, method and error type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "Current heap memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Current number of goroutines",
	})
}

// Package-level helpers operating on the global manager.

// RecordAnalysis records a completed skill-gap analysis and its missing-skill count.
func RecordAnalysis(missingCount int) {
	globalManager.analysesTotal.Inc()
	globalManager.missingSkillsCount.Observe(float64(missingCount))
}

// RecordUnknownRole records a skill-gap request rejected for an unknown role.
func RecordUnknownRole() {
	globalManager.analysesUnknownRole.Inc()
}

// RecordRoadmapLookup records a served roadmap lookup.
func RecordRoadmapLookup() {
	globalManager.roadmapLookups.Inc()
}

// RecordNewsFetch records a completed top-story fetch.
func RecordNewsFetch() {
	globalManager.newsFetches.Inc()
}

// RecordNewsFetchError records a failed top-story fetch.
func RecordNewsFetchError() {
	globalManager.newsFetchErrors.Inc()
}

// RecordNewsItemDropped records an upstream item dropped from the result.
func RecordNewsItemDropped() {
	globalManager.newsItemsDropped.Inc()
}

// RecordNewsFetchLatency records the whole-fetch latency in milliseconds.
func RecordNewsFetchLatency(latencyMs float64) {
	globalManager.newsFetchLatency.Observe(latencyMs)
}

// RecordJournalWrite records a persisted journal entry.
func RecordJournalWrite() {
	globalManager.journalWrites.Inc()
}

// RecordJournalWriteError records a swallowed journal write failure.
func RecordJournalWriteError() {
	globalManager.journalWriteErrors.Inc()
}

// RecordJournalDropped records a journal entry dropped on backpressure.
func RecordJournalDropped() {
	globalManager.journalDropped.Inc()
}

// UpdateJournalQueueDepth updates the journal write queue depth gauge.
func UpdateJournalQueueDepth(depth int) {
	globalManager.journalQueueDepth.Set(float64(depth))
}

// RecordHTTPRequest records an HTTP request by endpoint, method and status.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint records an error response by endpoint and type.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage updates the heap memory usage gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount updates the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
