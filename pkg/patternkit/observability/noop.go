package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoopMetrics is a MetricsRecorder that does nothing.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordConstruction does nothing.
func (NoopMetrics) RecordConstruction(_ context.Context, _ string, _ time.Duration, _ error) {}

// RecordFastPathHit does nothing.
func (NoopMetrics) RecordFastPathHit(_ context.Context, _ string) {}

// RecordWaitTimeout does nothing.
func (NoopMetrics) RecordWaitTimeout(_ context.Context, _ string) {}

// NoopSpanManager is a SpanManager that does nothing.
type NoopSpanManager struct{}

// Compile-time interface check.
var _ SpanManager = NoopSpanManager{}

var noopSpan = noop.Span{}

// StartConstructSpan returns the context unchanged and a no-op span.
func (NoopSpanManager) StartConstructSpan(ctx context.Context, _, _ string) (context.Context, trace.Span) {
	return ctx, noopSpan
}

// EndSpanWithError does nothing.
func (NoopSpanManager) EndSpanWithError(_ trace.Span, _ error) {}

// AddSpanEvent does nothing.
func (NoopSpanManager) AddSpanEvent(_ context.Context, _ string, _ ...attribute.KeyValue) {}
