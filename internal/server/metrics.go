package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the web surface.
//
// Metrics collected:
//   - lathe_generations_total: Counter of generation jobs by framework and status
//   - lathe_generation_duration_seconds: Histogram of generation duration by framework
//   - lathe_features_applied_total: Counter of applied features by name
//   - lathe_archives_built_total: Counter of project archives built
//   - lathe_http_requests_in_flight: Gauge of requests currently being served
type metrics struct {
	generationsTotal   *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	featuresApplied    *prometheus.CounterVec
	archivesBuilt      prometheus.Counter
	httpInFlight       prometheus.Gauge
}

// newMetrics registers the server metrics with the given registry.
func newMetrics(registry prometheus.Registerer) *metrics {
	factory := promauto.With(registry)

	return &metrics{
		generationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lathe",
			Name:      "generations_total",
			Help:      "Total number of project generation jobs",
		}, []string{"framework", "status"}),

		generationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lathe",
			Name:      "generation_duration_seconds",
			Help:      "Project generation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"framework"}),

		featuresApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lathe",
			Name:      "features_applied_total",
			Help:      "Total number of features applied to generated projects",
		}, []string{"feature"}),

		archivesBuilt: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "lathe",
			Name:      "archives_built_total",
			Help:      "Total number of project archives built",
		}),

		httpInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "lathe",
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		}),
	}
}

// recordGeneration records the outcome of one generation job.
func (m *metrics) recordGeneration(framework string, err error, seconds float64) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.generationsTotal.WithLabelValues(framework, status).Inc()
	if err == nil {
		m.generationDuration.WithLabelValues(framework).Observe(seconds)
	}
}
