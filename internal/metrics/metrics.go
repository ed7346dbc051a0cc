package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SecretFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refapi_secret_fetches_total",
			Help: "Total number of secret fetches by service and status.",
		},
		[]string{"service", "status"},
	)

	SecretFetchDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "refapi_secret_fetch_duration_seconds",
			Help:    "Duration of secret fetches in seconds.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		},
		[]string{"service", "status"},
	)

	StoreHealthy = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "refapi_store_healthy",
			Help: "Whether the secret store reported healthy on the last probe (1 healthy, 0 unhealthy).",
		},
	)

	DependencyHealthy = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "refapi_dependency_healthy",
			Help: "Whether a dependency reported healthy on the last probe (1 healthy, 0 unhealthy).",
		},
		[]string{"dependency"},
	)

	MessagesPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refapi_messages_published_total",
			Help: "Total number of messages handed to the publisher by queue and status.",
		},
		[]string{"queue", "status"},
	)
)

// Register registers all custom reference API metrics with the default
// Prometheus registry.
func Register() {
	prometheus.MustRegister(
		SecretFetchesTotal,
		SecretFetchDurationSeconds,
		StoreHealthy,
		DependencyHealthy,
		MessagesPublishedTotal,
	)
}
