package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "compliance_login_total",
			Help: "Total number of login attempts",
		},
	)

	RegisterCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "compliance_register_total",
			Help: "Total number of user registrations",
		},
	)

	SearchCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "compliance_product_searches_total",
			Help: "Total number of product catalog searches",
		},
	)

	// Export counter by document kind and encoding
	ExportCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compliance_exports_total",
			Help: "Total number of document exports by kind and format",
		},
		[]string{"kind", "format"},
	)

	// Export error counter
	ExportErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compliance_export_errors_total",
			Help: "Total number of failed document exports by kind",
		},
		[]string{"kind"},
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compliance_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Histogram metrics
var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "compliance_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	// Document render duration by kind
	RenderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "compliance_render_duration_seconds",
			Help:    "Duration of document renders in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "compliance_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func init() {
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(RegisterCounter)
	prometheus.MustRegister(SearchCounter)
	prometheus.MustRegister(ExportCounter)
	prometheus.MustRegister(ExportErrorCounter)
	prometheus.MustRegister(HTTPRequestCounter)

	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(RenderDuration)
	prometheus.MustRegister(DBOperationDuration)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// TrackRender measures a document render duration
func TrackRender(kind string) func() {
	startTime := time.Now()
	return func() {
		RenderDuration.With(prometheus.Labels{"kind": kind}).Observe(time.Since(startTime).Seconds())
	}
}

// RecordExport records a completed export by kind and format
func RecordExport(kind, format string) {
	ExportCounter.With(prometheus.Labels{"kind": kind, "format": format}).Inc()
}

// RecordExportError records a failed export by kind
func RecordExportError(kind string) {
	ExportErrorCounter.With(prometheus.Labels{"kind": kind}).Inc()
}
