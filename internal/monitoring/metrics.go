// Package monitoring holds the Prometheus collectors of the service.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	fetchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_fetch_failures_total",
			Help: "Record source reads that failed and were replaced by an empty collection",
		},
		[]string{"entity"},
	)

	exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_exports_total",
			Help: "Lead exports produced, by format",
		},
		[]string{"format"},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_notifications_total",
			Help: "Outbound notifications, by channel and result",
		},
		[]string{"channel", "result"},
	)
)

func RecordFetchFailure(entity string) {
	fetchFailures.WithLabelValues(entity).Inc()
}

func RecordExport(format string) {
	exports.WithLabelValues(format).Inc()
}

func RecordNotification(channel string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	notifications.WithLabelValues(channel, result).Inc()
}

// FetchFailures exposes the counter for tests and health reporting.
func FetchFailures(entity string) prometheus.Counter {
	return fetchFailures.WithLabelValues(entity)
}

func Exports(format string) prometheus.Counter {
	return exports.WithLabelValues(format)
}
