package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency (seconds)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Contact form submission count by outcome
	ContactSubmissionCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submission_count",
			Help: "Total number of contact form submissions",
		},
		[]string{"outcome"}, // outcome: success, validation_failed, rate_limited, send_failed, not_configured, error
	)

	// Outbound email count by kind and status
	EmailSentCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_sent_count",
			Help: "Total number of outbound emails",
		},
		[]string{"kind", "status"}, // kind: notification, confirmation; status: success, failed
	)
)

// RecordHTTPRequestDuration records one handled request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementContactSubmission counts one submission outcome.
func IncrementContactSubmission(outcome string) {
	ContactSubmissionCount.WithLabelValues(outcome).Inc()
}

// IncrementEmailSent counts one outbound email attempt.
func IncrementEmailSent(kind, status string) {
	EmailSentCount.WithLabelValues(kind, status).Inc()
}
