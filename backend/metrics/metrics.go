package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// RequestsTotal counts HTTP requests by route and status code.
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "potholes",
		Subsystem: "dashboard",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, labeled by route and status code.",
	}, []string{"route", "code"})

	// RequestDurationSeconds is the handler time per request.
	RequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "potholes",
		Subsystem: "dashboard",
		Name:      "http_request_duration_seconds",
		Help:      "Time spent serving an HTTP request, labeled by route.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route"})

	// SelectionsTotal counts dashboard recomputations by selector.
	SelectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "potholes",
		Subsystem: "dashboard",
		Name:      "selections_total",
		Help:      "Total number of dashboard views computed, labeled by status selector.",
	}, []string{"selector"})

	// Sessions is the number of connected websocket sessions.
	Sessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "potholes",
		Subsystem: "dashboard",
		Name:      "websocket_sessions",
		Help:      "Current number of connected websocket dashboard sessions.",
	})

	// DatasetReports is the number of reports loaded at startup.
	DatasetReports = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "potholes",
		Subsystem: "dataset",
		Name:      "reports",
		Help:      "Number of reports in the loaded dataset.",
	})

	// DatasetQuarantined is the number of rows rejected at load.
	DatasetQuarantined = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "potholes",
		Subsystem: "dataset",
		Name:      "quarantined_rows",
		Help:      "Number of dataset rows rejected at load for unknown status or bad coordinates.",
	})
)

// Register registers dashboard metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestDurationSeconds,
			SelectionsTotal,
			Sessions,
			DatasetReports,
			DatasetQuarantined,
		)
	})
}
