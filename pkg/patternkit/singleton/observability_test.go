package singleton

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	perrors "github.com/randalmurphal/patternkit/pkg/patternkit/errors"
	"github.com/randalmurphal/patternkit/pkg/patternkit/observability"
)

// recordingMetrics counts recorder calls.
type recordingMetrics struct {
	mu            sync.Mutex
	constructions int
	failures      int
	fastPathHits  int
	waitTimeouts  int
}

func (m *recordingMetrics) RecordConstruction(_ context.Context, _ string, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.constructions++
	if err != nil {
		m.failures++
	}
}

func (m *recordingMetrics) RecordFastPathHit(_ context.Context, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fastPathHits++
}

func (m *recordingMetrics) RecordWaitTimeout(_ context.Context, _ string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waitTimeouts++
}

// spanRecorder adapts an SDK tracer provider to observability.SpanManager.
type spanRecorder struct {
	tracer trace.Tracer
}

func (s spanRecorder) StartConstructSpan(ctx context.Context, registry, _ string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "construct."+registry)
}

func (s spanRecorder) EndSpanWithError(span trace.Span, err error) {
	observability.EndSpanWithError(span, err)
}

func (s spanRecorder) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	observability.AddSpanEvent(ctx, name, attrs...)
}

func TestRegistryRecordsMetrics(t *testing.T) {
	m := &recordingMetrics{}
	r := New(newResource, WithMetrics(m))

	_, err := r.GetOrCreate("")
	require.Error(t, err)
	_, err = r.GetOrCreate("A")
	require.NoError(t, err)
	_, err = r.GetOrCreate("B")
	require.NoError(t, err)

	assert.Equal(t, 2, m.constructions)
	assert.Equal(t, 1, m.failures)
	assert.Equal(t, 1, m.fastPathHits)
}

func TestRegistryTracesConstruction(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := New(newResource, WithName("os"), WithSpans(spanRecorder{tracer: tp.Tracer("test")}))

	_, _ = r.GetOrCreate("")
	_, _ = r.GetOrCreate("A")
	_, _ = r.GetOrCreate("B")

	spans := exporter.GetSpans()
	require.Len(t, spans, 2, "fast-path hits are not traced")
	assert.Equal(t, "construct.os", spans[0].Name)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, codes.Ok, spans[1].Status.Code)
}

func TestRegistryLogsIgnoredArgument(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := New(newResource, WithName("os"), WithLogger(logger))

	_, err := r.GetOrCreate("Windows 9.1")
	require.NoError(t, err)
	_, err = r.GetOrCreate("Windows 11.1")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "instance constructed")
	assert.Contains(t, out, "argument ignored")
	assert.Contains(t, out, `arg="Windows 11.1"`)
}

func TestRegistryTracesRetries(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	calls := 0
	r := New(func(ctx context.Context, label string) (*resource, error) {
		calls++
		if calls < 3 {
			return nil, perrors.Transient(errors.New("warming up"), "boot")
		}
		return newResource(ctx, label)
	}, WithSpans(spanRecorder{tracer: tp.Tracer("test")}), WithRetry(fastRetry(3)))

	_, err := r.GetOrCreate("A")
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 2)
	assert.Equal(t, "retry", spans[0].Events[0].Name)
	assert.Equal(t, attribute.Int("attempt", 3), spans[0].Events[1].Attributes[0])
}
