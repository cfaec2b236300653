package infrastructure

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"localweather.app/internal/ports"
)

func TestPrometheusMetrics_RecordFetch(t *testing.T) {
	m := NewMetricsForTesting()

	m.RecordFetch(ports.FetchKindWeather, ports.FetchOutcomeSuccess, 120*time.Millisecond)
	m.RecordFetch(ports.FetchKindWeather, ports.FetchOutcomeSuccess, 80*time.Millisecond)
	m.RecordFetch(ports.FetchKindForecast, "network", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FetchTotal.WithLabelValues("weather", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FetchTotal.WithLabelValues("forecast", "network")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.FetchDuration))
}

func TestPrometheusMetrics_RecordPermissionDecision(t *testing.T) {
	m := NewMetricsForTesting()

	m.RecordPermissionDecision(ports.PermissionDenied)
	m.RecordPermissionDecision(ports.PermissionGranted)
	m.RecordPermissionDecision(ports.PermissionDenied)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PermissionDecisions.WithLabelValues("denied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PermissionDecisions.WithLabelValues("granted")))
}

func TestNewPrometheusMetrics_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)
	m.RecordFetch(ports.FetchKindWeather, ports.FetchOutcomeSuccess, time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "localweather_fetch_cycles_total")
	assert.Contains(t, names, "localweather_fetch_cycle_duration_seconds")
}
