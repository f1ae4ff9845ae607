package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by route pattern and status.
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
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// QRLinksGenerated counts QR images rendered, by output format.
	QRLinksGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qr_links_generated_total",
			Help: "Number of product QR links rendered",
		},
		[]string{"format"},
	)

	// StatusLookups counts public status lookups by outcome.
	StatusLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_lookups_total",
			Help: "Public status lookups by outcome",
		},
		[]string{"outcome"},
	)
)
