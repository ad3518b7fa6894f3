package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fieldset-dev/fieldset"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "fieldset").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "fieldset",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for form endpoints.
type metrics struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	submissionsTotal   *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	uploadsStaged      prometheus.Counter
	uploadBytes        prometheus.Histogram
	uploadsExpired     prometheus.Counter
}

// globalMetrics is the singleton metrics instance.
// Created on first call to Prometheus().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of form endpoint requests",
			ConstLabels: config.ConstLabels,
		}, []string{"path", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "Request processing duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"path"}),

		submissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "submissions_total",
			Help:        "Total number of form submissions by outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome"}),

		validationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "validation_failures_total",
			Help:        "Total number of field validation failures",
			ConstLabels: config.ConstLabels,
		}, []string{"field"}),

		uploadsStaged: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "uploads_staged_total",
			Help:        "Total number of uploads staged into the store",
			ConstLabels: config.ConstLabels,
		}),

		uploadBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "upload_bytes",
			Help:        "Size of staged uploads in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1024, 10240, 102400, 1048576, 10485760}, // 1KB to 10MB
		}),

		uploadsExpired: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "uploads_expired_total",
			Help:        "Total number of staged uploads removed by cleanup",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Prometheus creates middleware that collects Prometheus metrics for
// form endpoint requests.
//
// Metrics collected:
//   - fieldset_requests_total: Counter of requests by path and status code
//   - fieldset_request_duration_seconds: Histogram of request duration
//   - fieldset_submissions_total: Counter of submissions by outcome (via RecordSubmission)
//   - fieldset_validation_failures_total: Counter of failures by field (via RecordValidationFailures)
//   - fieldset_uploads_staged_total: Counter of staged uploads (via RecordUploadStaged)
//   - fieldset_upload_bytes: Histogram of staged upload sizes
//   - fieldset_uploads_expired_total: Counter of cleaned-up uploads (via RecordUploadsExpired)
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus(
//	    middleware.WithNamespace("myapp"),
//	))
//	r.Handle("/submit", httpform.Handler(form))
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
func Prometheus(opts ...MetricsOption) func(http.Handler) http.Handler {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Initialize metrics once
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if path == "" {
				path = "/"
			}

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			// Time the request
			start := time.Now()
			next.ServeHTTP(ww, r)
			duration := time.Since(start).Seconds()

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			m.requestDuration.WithLabelValues(path).Observe(duration)
			m.requestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
		})
	}
}

// =============================================================================
// Metrics Recording Functions
// =============================================================================

// RecordSubmission records a processed form submission.
// Call this from your endpoint after Validate().
func RecordSubmission(valid bool) {
	if globalMetrics != nil {
		outcome := "valid"
		if !valid {
			outcome = "invalid"
		}
		globalMetrics.submissionsTotal.WithLabelValues(outcome).Inc()
	}
}

// RecordValidationFailures records every field error in errs.
func RecordValidationFailures(errs fieldset.Errors) {
	if globalMetrics != nil {
		for field, messages := range errs {
			globalMetrics.validationFailures.WithLabelValues(field).Add(float64(len(messages)))
		}
	}
}

// RecordUploadStaged records an upload saved into the staging store.
func RecordUploadStaged(sizeBytes int64) {
	if globalMetrics != nil {
		globalMetrics.uploadsStaged.Inc()
		globalMetrics.uploadBytes.Observe(float64(sizeBytes))
	}
}

// RecordUploadsExpired records uploads removed by a cleanup pass.
func RecordUploadsExpired(count int) {
	if globalMetrics != nil {
		globalMetrics.uploadsExpired.Add(float64(count))
	}
}

// =============================================================================
// Metrics Collector
// =============================================================================

// Collector returns the metrics for use in custom registrations.
// This allows collecting form metrics alongside other application metrics.
type Collector struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	submissionsTotal   *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	uploadsStaged      prometheus.Counter
	uploadBytes        prometheus.Histogram
	uploadsExpired     prometheus.Counter
}

// GetMetrics returns the global metrics collector.
// Returns nil if Prometheus middleware has not been initialized.
func GetMetrics() *Collector {
	if globalMetrics == nil {
		return nil
	}
	return &Collector{
		requestsTotal:      globalMetrics.requestsTotal,
		requestDuration:    globalMetrics.requestDuration,
		submissionsTotal:   globalMetrics.submissionsTotal,
		validationFailures: globalMetrics.validationFailures,
		uploadsStaged:      globalMetrics.uploadsStaged,
		uploadBytes:        globalMetrics.uploadBytes,
		uploadsExpired:     globalMetrics.uploadsExpired,
	}
}
