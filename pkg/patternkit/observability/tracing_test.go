package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest installs a tracer provider backed by an in-memory exporter.
func setupTracingTest(t *testing.T) *tracetest.InMemoryExporter {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("patternkit")

	t.Cleanup(func() {
		otel.SetTracerProvider(originalProvider)
		tracer = otel.Tracer("patternkit")
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	})
	return exporter
}

func TestStartConstructSpan(t *testing.T) {
	exporter := setupTracingTest(t)

	_, span := StartConstructSpan(context.Background(), "os", "Windows 9.1")
	require.NotNil(t, span)
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	s := spans[0]
	assert.Equal(t, "patternkit.singleton.construct", s.Name)
	assert.Contains(t, s.Attributes, attribute.String("registry.name", "os"))
	assert.Contains(t, s.Attributes, attribute.String("construct.arg", "Windows 9.1"))
}

func TestEndSpanWithError(t *testing.T) {
	exporter := setupTracingTest(t)

	t.Run("error sets status and records event", func(t *testing.T) {
		exporter.Reset()
		_, span := StartConstructSpan(context.Background(), "os", "")
		EndSpanWithError(span, errors.New("empty name"))

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status.Code)
		assert.Equal(t, "empty name", spans[0].Status.Description)
		require.NotEmpty(t, spans[0].Events)
		assert.Equal(t, "exception", spans[0].Events[0].Name)
	})

	t.Run("success sets ok", func(t *testing.T) {
		exporter.Reset()
		_, span := StartConstructSpan(context.Background(), "os", "a")
		EndSpanWithError(span, nil)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Ok, spans[0].Status.Code)
	})

	t.Run("nil span does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() { EndSpanWithError(nil, errors.New("x")) })
	})
}

func TestSpanManagerAddsEvents(t *testing.T) {
	exporter := setupTracingTest(t)
	sm := NewSpanManager()

	ctx, span := sm.StartConstructSpan(context.Background(), "os", "a")
	sm.AddSpanEvent(ctx, "lock.acquired", attribute.Int("waiters", 2))
	sm.EndSpanWithError(span, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "lock.acquired", spans[0].Events[0].Name)
}

func TestAddSpanEventWithoutSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		AddSpanEvent(context.Background(), "orphan")
	})
}
