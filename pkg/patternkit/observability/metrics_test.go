package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupMetricsTest installs a test meter provider and returns its reader.
func setupMetricsTest(t *testing.T) *sdkmetric.ManualReader {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	originalProvider := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	t.Cleanup(func() {
		otel.SetMeterProvider(originalProvider)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down meter provider: %v", err)
		}
	})
	return reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return &rm
}

func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// counterFor returns the counter value for the given registry attribute.
func counterFor(t *testing.T, m *metricdata.Metrics, registry string) int64 {
	t.Helper()
	require.NotNil(t, m)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "Expected Sum type")
	for _, dp := range sum.DataPoints {
		if v, ok := dp.Attributes.Value("registry"); ok && v.AsString() == registry {
			return dp.Value
		}
	}
	return 0
}

func TestNewMetricsRecorder(t *testing.T) {
	setupMetricsTest(t)

	recorder := NewMetricsRecorder()
	require.NotNil(t, recorder)
	_, isNoop := recorder.(NoopMetrics)
	assert.False(t, isNoop, "Expected real metrics recorder, got noop")
}

func TestRecordConstruction(t *testing.T) {
	reader := setupMetricsTest(t)
	m, err := newOtelMetrics()
	require.NoError(t, err)
	ctx := context.Background()

	m.RecordConstruction(ctx, "os", 20*time.Millisecond, nil)
	m.RecordConstruction(ctx, "os", 5*time.Millisecond, errors.New("empty name"))

	rm := collectMetrics(t, reader)
	assert.Equal(t, int64(2), counterFor(t, findMetric(rm, "patternkit.singleton.constructions"), "os"))
	assert.Equal(t, int64(1), counterFor(t, findMetric(rm, "patternkit.singleton.construction_errors"), "os"))

	latency := findMetric(rm, "patternkit.singleton.construction_latency_ms")
	require.NotNil(t, latency)
	hist, ok := latency.Data.(metricdata.Histogram[float64])
	require.True(t, ok, "Expected Histogram type")
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)
}

func TestRecordFastPathAndTimeouts(t *testing.T) {
	reader := setupMetricsTest(t)
	m, err := newOtelMetrics()
	require.NoError(t, err)
	ctx := context.Background()

	for range 3 {
		m.RecordFastPathHit(ctx, "os")
	}
	m.RecordWaitTimeout(ctx, "os")

	rm := collectMetrics(t, reader)
	assert.Equal(t, int64(3), counterFor(t, findMetric(rm, "patternkit.singleton.fast_path_hits"), "os"))
	assert.Equal(t, int64(1), counterFor(t, findMetric(rm, "patternkit.singleton.wait_timeouts"), "os"))
}
