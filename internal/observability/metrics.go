package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "brado_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "brado_active_connections",
			Help: "Number of active connections",
		},
	)

	// DocumentValidations counts validations by document type and outcome.
	// result is one of valid, invalid_format, repeated_digits, check_digit_mismatch.
	DocumentValidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brado_document_validations_total",
			Help: "Number of document validations",
		},
		[]string{"type", "result"},
	)

	// DocumentGenerations counts generated documents by type
	DocumentGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brado_document_generations_total",
			Help: "Number of generated documents",
		},
		[]string{"type", "masked"},
	)
)
