package prometheus

import (
	"time"

	"storefront-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Authentication metrics
	AuthAttemptsCounter prometheus.Counter
	AuthSuccessCounter  prometheus.Counter
	AuthErrorsCounter   prometheus.Counter

	// Document store metrics
	DocumentLoadsCounter  prometheus.CounterVec
	DocumentSavesCounter  prometheus.CounterVec
	DocumentSaveDuration  prometheus.Histogram
	RevisionConflictTotal prometheus.Counter

	// Cart metrics
	CartOperationsCounter prometheus.CounterVec

	// Checkout metrics
	OrdersCounter       prometheus.Counter
	CheckoutErrorsTotal prometheus.CounterVec

	// Admin metrics
	AdminOperationsCounter prometheus.CounterVec

	// Upload metrics
	UploadsCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(cfg *config.Config) {
	// Use metric prefix from configuration
	prefix := cfg.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Authentication metrics
	AuthAttemptsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_attempts_total",
			Help: "Total number of admin login attempts",
		},
	)

	AuthSuccessCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_success_total",
			Help: "Total number of successful admin logins",
		},
	)

	AuthErrorsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_auth_errors_total",
			Help: "Total number of failed admin logins",
		},
	)

	// Document store metrics
	DocumentLoadsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_document_loads_total",
			Help: "Total number of state document loads",
		},
		[]string{"result"},
	)

	DocumentSavesCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_document_saves_total",
			Help: "Total number of state document saves",
		},
		[]string{"result"},
	)

	DocumentSaveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_document_save_duration_seconds",
			Help:    "Duration of state document saves in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RevisionConflictTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_revision_conflicts_total",
			Help: "Total number of rejected concurrent document writes",
		},
	)

	// Cart metrics
	CartOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"},
	)

	// Checkout metrics
	OrdersCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_orders_total",
			Help: "Total number of orders placed",
		},
	)

	CheckoutErrorsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_checkout_errors_total",
			Help: "Total number of failed checkouts",
		},
		[]string{"reason"},
	)

	// Admin metrics
	AdminOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_admin_operations_total",
			Help: "Total number of admin catalog operations",
		},
		[]string{"collection", "operation"},
	)

	// Upload metrics
	UploadsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_image_uploads_total",
			Help: "Total number of admin image uploads",
		},
		[]string{"result"},
	)
}

// TrackDocumentSave returns a function that records the duration of a document save
func TrackDocumentSave() func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DocumentSaveDuration.Observe(duration)
	}
}

// RecordCartOperation increments the counter for cart operations
func RecordCartOperation(operation string) {
	CartOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordAdminOperation increments the counter for admin catalog operations
func RecordAdminOperation(collection, operation string) {
	AdminOperationsCounter.WithLabelValues(collection, operation).Inc()
}

// RecordCheckoutError increments the counter for failed checkouts
func RecordCheckoutError(reason string) {
	CheckoutErrorsTotal.WithLabelValues(reason).Inc()
}
