package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordConstruction records a construction attempt with its duration and error status.
	RecordConstruction(ctx context.Context, registry string, duration time.Duration, err error)

	// RecordFastPathHit records a lookup served without taking the lock.
	RecordFastPathHit(ctx context.Context, registry string)

	// RecordWaitTimeout records a caller that gave up waiting for the lock.
	RecordWaitTimeout(ctx context.Context, registry string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	constructions      metric.Int64Counter
	constructLatency   metric.Float64Histogram
	constructionErrors metric.Int64Counter
	fastPathHits       metric.Int64Counter
	waitTimeouts       metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("patternkit")

	constructions, err := meter.Int64Counter("patternkit.singleton.constructions",
		metric.WithDescription("Number of construction attempts"),
	)
	if err != nil {
		return nil, err
	}

	constructLatency, err := meter.Float64Histogram("patternkit.singleton.construction_latency_ms",
		metric.WithDescription("Construction latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	constructionErrors, err := meter.Int64Counter("patternkit.singleton.construction_errors",
		metric.WithDescription("Number of failed construction attempts"),
	)
	if err != nil {
		return nil, err
	}

	fastPathHits, err := meter.Int64Counter("patternkit.singleton.fast_path_hits",
		metric.WithDescription("Lookups served without acquiring the lock"),
	)
	if err != nil {
		return nil, err
	}

	waitTimeouts, err := meter.Int64Counter("patternkit.singleton.wait_timeouts",
		metric.WithDescription("Callers that gave up waiting for construction"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		constructions:      constructions,
		constructLatency:   constructLatency,
		constructionErrors: constructionErrors,
		fastPathHits:       fastPathHits,
		waitTimeouts:       waitTimeouts,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordConstruction records a construction attempt.
func (m *otelMetrics) RecordConstruction(ctx context.Context, registry string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("registry", registry))

	m.constructions.Add(ctx, 1, attrs)
	m.constructLatency.Record(ctx, float64(duration.Milliseconds()), attrs)

	if err != nil {
		m.constructionErrors.Add(ctx, 1, attrs)
	}
}

// RecordFastPathHit records a lock-free lookup.
func (m *otelMetrics) RecordFastPathHit(ctx context.Context, registry string) {
	m.fastPathHits.Add(ctx, 1, metric.WithAttributes(attribute.String("registry", registry)))
}

// RecordWaitTimeout records a caller that timed out waiting.
func (m *otelMetrics) RecordWaitTimeout(ctx context.Context, registry string) {
	m.waitTimeouts.Add(ctx, 1, metric.WithAttributes(attribute.String("registry", registry)))
}
