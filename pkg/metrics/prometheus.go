// Package metrics provides Prometheus metrics for the scorecard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the scorecard service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Derivation metrics
	timelinesDerived   *prometheus.CounterVec
	reconcileFallbacks *prometheus.CounterVec

	// Ordering metrics
	collectionsOrdered *prometheus.CounterVec
	collectionSize     *prometheus.HistogramVec
	orderingLatency    *prometheus.HistogramVec
	weightingRuns      prometheus.Counter
	requestsRejected   *prometheus.CounterVec

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec
	errorRateByType     *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to keep exposition limited to what we register.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	customRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scorecard",
		subsystem:        "core",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one block per metric
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.timelinesDerived = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "timelines_derived_total",
		Help:        "Reconciled timelines produced, by resulting status",
		ConstLabels: labels,
	}, []string{"status"})

	m.reconcileFallbacks = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "reconcile_fallbacks_total",
		Help:        "Supplied timeline fields replaced by computed values, by field",
		ConstLabels: labels,
	}, []string{"field"})

	m.collectionsOrdered = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "collections_ordered_total",
		Help:        "Collections ordered for display, by entity kind",
		ConstLabels: labels,
	}, []string{"kind"})

	m.collectionSize = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "collection_size",
		Help:        "Number of entities per ordered collection",
		Buckets:     prometheus.ExponentialBuckets(1, 4, 8),
		ConstLabels: labels,
	}, []string{"kind"})

	m.orderingLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "ordering_latency_milliseconds",
		Help:        "Time to derive, reconcile and order a collection in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	}, []string{"kind"})

	m.weightingRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "weighting_runs_total",
		Help:        "Percentile weighting computations",
		ConstLabels: labels,
	})

	m.requestsRejected = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "requests_rejected_total",
		Help:        "Collections rejected before ordering, by reason",
		ConstLabels: labels,
	}, []string{"reason"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "http",
		Name:        "requests_total",
		Help:        "Total number of HTTP requests",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   "http",
		Name:        "request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.errorRateByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "http",
		Name:        "errors_by_endpoint_total",
		Help:        "HTTP errors by endpoint",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "error_type"})

	m.errorRateByType = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "http",
		Name:        "errors_by_type_total",
		Help:        "HTTP errors by type and severity",
		ConstLabels: labels,
	}, []string{"error_type", "severity"})
}

// RecordTimelineDerived counts a reconciled timeline with the given status.
func (m *Manager) RecordTimelineDerived(status string) {
	if m.enabled {
		m.timelinesDerived.WithLabelValues(status).Inc()
	}
}

// RecordReconcileFallback counts a supplied field replaced by its computed value.
func (m *Manager) RecordReconcileFallback(field string) {
	if m.enabled {
		m.reconcileFallbacks.WithLabelValues(field).Inc()
	}
}

// RecordCollectionOrdered records one ordered collection.
func (m *Manager) RecordCollectionOrdered(kind string, size int, latencyMs float64) {
	if !m.enabled {
		return
	}
	m.collectionsOrdered.WithLabelValues(kind).Inc()
	m.collectionSize.WithLabelValues(kind).Observe(float64(size))
	m.orderingLatency.WithLabelValues(kind).Observe(latencyMs)
}

// RecordWeightingRun counts one percentile weighting computation.
func (m *Manager) RecordWeightingRun() {
	if m.enabled {
		m.weightingRuns.Inc()
	}
}

// RecordRequestRejected counts a collection rejected for reason.
func (m *Manager) RecordRequestRejected(reason string) {
	if m.enabled {
		m.requestsRejected.WithLabelValues(reason).Inc()
	}
}

// RecordHTTPRequest records an HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordHTTPError records an HTTP error response.
func (m *Manager) RecordHTTPError(endpoint, method, errorType, severity string) {
	if !m.enabled {
		return
	}
	m.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	m.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// Package-level helpers record on the global manager.

// RecordTimelineDerived counts a reconciled timeline with the given status.
func RecordTimelineDerived(status string) { globalManager.RecordTimelineDerived(status) }

// RecordReconcileFallback counts a supplied field replaced by its computed value.
func RecordReconcileFallback(field string) { globalManager.RecordReconcileFallback(field) }

// RecordCollectionOrdered records one ordered collection.
func RecordCollectionOrdered(kind string, size int, latencyMs float64) {
	globalManager.RecordCollectionOrdered(kind, size, latencyMs)
}

// RecordWeightingRun counts one percentile weighting computation.
func RecordWeightingRun() { globalManager.RecordWeightingRun() }

// RecordRequestRejected counts a collection rejected for reason.
func RecordRequestRejected(reason string) { globalManager.RecordRequestRejected(reason) }

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

// RecordHTTPError records an HTTP error response.
func RecordHTTPError(endpoint, method, errorType, severity string) {
	globalManager.RecordHTTPError(endpoint, method, errorType, severity)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
