package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the API
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsCreated     prometheus.Counter
	CalendarFailures    prometheus.Counter
	EmailsSent          prometheus.Counter
	EmailsFailed        prometheus.Counter
	PredictionsTotal    prometheus.Counter
	GuideDownloads      prometheus.Counter
}

// New registers and returns the API metrics
func New() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cetadvisor_http_requests_total",
			Help: "Total number of HTTP requests by method, path and status",
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cetadvisor_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cetadvisor_bookings_created_total",
			Help: "Total number of consultation bookings created",
		}),

		CalendarFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cetadvisor_calendar_failures_total",
			Help: "Total number of failed calendar meeting creations",
		}),

		EmailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cetadvisor_emails_sent_total",
			Help: "Total number of confirmation emails sent",
		}),

		EmailsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cetadvisor_emails_failed_total",
			Help: "Total number of confirmation emails that failed to send",
		}),

		PredictionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cetadvisor_predictions_total",
			Help: "Total number of college predictions served",
		}),

		GuideDownloads: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cetadvisor_guide_downloads_total",
			Help: "Total number of guide download leads captured",
		}),
	}
}
