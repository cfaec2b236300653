package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"localweather.app/internal/ports"
)

const metricsNamespace = "localweather"

// PrometheusMetrics implements the FetchMetrics port with Prometheus collectors
type PrometheusMetrics struct {
	FetchTotal          *prometheus.CounterVec   // labels: kind={weather,forecast}, outcome
	FetchDuration       *prometheus.HistogramVec // labels: kind
	PermissionDecisions *prometheus.CounterVec   // labels: decision
}

// NewPrometheusMetrics creates the collectors and registers them with reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		FetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "fetch_cycles_total",
			Help:      "Completed fetch cycles by kind and outcome.",
		}, []string{"kind", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "fetch_cycle_duration_seconds",
			Help:      "Duration of a fetch cycle including the location fix.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"kind"}),
		PermissionDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "permission_decisions_total",
			Help:      "Location permission answers by decision.",
		}, []string{"decision"}),
	}

	reg.MustRegister(m.FetchTotal, m.FetchDuration, m.PermissionDecisions)
	return m
}

// NewMetricsForTesting creates metrics on a fresh registry to avoid
// "already registered" panics across tests
func NewMetricsForTesting() *PrometheusMetrics {
	return NewPrometheusMetrics(prometheus.NewRegistry())
}

func (m *PrometheusMetrics) RecordFetch(kind, outcome string, duration time.Duration) {
	m.FetchTotal.WithLabelValues(kind, outcome).Inc()
	m.FetchDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordPermissionDecision(decision ports.PermissionDecision) {
	m.PermissionDecisions.WithLabelValues(decision.String()).Inc()
}
