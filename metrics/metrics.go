package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for ClassificationsTotal
const (
	OutcomeSuccess             = "success"
	OutcomeBlankInput          = "blank_input"
	OutcomeRemoteRejected      = "remote_rejected"
	OutcomeUnusablePrediction  = "unusable_prediction"
	OutcomeRequestError        = "request_error"
	OutcomeResponseFormatError = "response_format_error"
)

// Emotion service metrics
var (
	// ClassificationsTotal tracks classify calls by how they ended
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emotion_classifications_total",
			Help: "Total emotion classifications by outcome",
		},
		[]string{"outcome"},
	)

	// DominantEmotionTotal tracks which emotion won for successful classifications
	DominantEmotionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emotion_dominant_total",
			Help: "Successful classifications by dominant emotion",
		},
		[]string{"emotion"},
	)

	// EmotionAPIDuration tracks round trip latency to the remote emotion service.
	// status is the HTTP status code, or "error" if no response arrived.
	EmotionAPIDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "emotion_api_request_duration_seconds",
			Help:    "Emotion API round trip duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"status"},
	)
)

// HTTP metrics
var (
	// HTTPRequestsTotal tracks inbound requests by route and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks inbound request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
