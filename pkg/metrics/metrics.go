// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videotube_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "videotube_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	// Media Store Metrics
	MediaUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videotube_media_uploads_total",
			Help: "Total number of media uploads by resource type and outcome",
		},
		[]string{"resource_type", "outcome"},
	)

	MediaUploadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "videotube_media_upload_duration_seconds",
			Help:    "Duration of media uploads in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"resource_type"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videotube_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"route"},
	)

	// Toggle Metrics
	TogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videotube_toggles_total",
			Help: "Total number of like/subscription toggles by target and resulting state",
		},
		[]string{"target", "result"},
	)

	// Notification Metrics
	NotificationsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videotube_notifications_published_total",
			Help: "Total number of notification tasks published to the queue",
		},
		[]string{"type", "outcome"},
	)

	NotificationsDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "videotube_notifications_delivered_total",
			Help: "Total number of notifications written to subscriber inboxes",
		},
		[]string{"type", "outcome"},
	)
)

// RecordToggle counts one toggle; added reports which branch ran.
func RecordToggle(target string, added bool) {
	result := "removed"
	if added {
		result = "added"
	}
	TogglesTotal.WithLabelValues(target, result).Inc()
}
