// Package observer exposes the service's prometheus metrics: HTTP request
// counts and latencies, database operation durations, and report build times.
package observer

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsEnabled = true // Flag to control metric collection

	httpRequestLabels = []string{"method", "route", "status"}
	dbOperationLabels = []string{"operation", "entity", "status"}

	// HTTPRequestsTotal counts requests by method, route pattern, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_admin_http_requests_total",
			Help: "Total number of HTTP requests handled.",
		},
		httpRequestLabels,
	)

	// HTTPRequestDurationSeconds is a histogram of request latencies.
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipeline_admin_http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		httpRequestLabels,
	)

	// DatabaseOperationDurationSeconds is a histogram of DB op durations.
	DatabaseOperationDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipeline_admin_db_operation_duration_seconds",
			Help:    "Histogram of database operation durations.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		dbOperationLabels,
	)

	// ReportBuildDurationSeconds times dashboard aggregation, which runs over
	// a full data snapshot on every request.
	ReportBuildDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipeline_admin_report_build_duration_seconds",
			Help:    "Histogram of report aggregation durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"report"},
	)

	// ExportRowsTotal counts rows written to exports by format.
	ExportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_admin_export_rows_total",
			Help: "Total number of data rows written to exports.",
		},
		[]string{"format"},
	)
)

// SetMetricsEnabled toggles metric collection globally.
func SetMetricsEnabled(enabled bool) {
	metricsEnabled = enabled
}

// ObserveHTTPRequest records one handled HTTP request.
func ObserveHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	if !metricsEnabled {
		return
	}
	status := strconv.Itoa(statusCode)
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDurationSeconds.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveDbOperationDuration records the duration for a database operation.
func ObserveDbOperationDuration(operation, entity string, duration time.Duration, err error) {
	if !metricsEnabled {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	DatabaseOperationDurationSeconds.WithLabelValues(operation, entity, status).Observe(duration.Seconds())
}

// ObserveReportBuildDuration records the time spent building one report.
func ObserveReportBuildDuration(report string, duration time.Duration) {
	if !metricsEnabled {
		return
	}
	ReportBuildDurationSeconds.WithLabelValues(report).Observe(duration.Seconds())
}

// IncExportRows counts rows written to an export file.
func IncExportRows(format string, rows int) {
	if !metricsEnabled {
		return
	}
	ExportRowsTotal.WithLabelValues(format).Add(float64(rows))
}
