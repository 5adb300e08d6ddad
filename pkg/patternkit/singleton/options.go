package singleton

import (
	"log/slog"
	"time"

	perrors "github.com/randalmurphal/patternkit/pkg/patternkit/errors"
	"github.com/randalmurphal/patternkit/pkg/patternkit/observability"
)

// config holds registry configuration.
type config struct {
	name        string
	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	spans       observability.SpanManager
	waitTimeout time.Duration
	retry       *perrors.RetryConfig
}

// defaultConfig returns the default registry configuration.
func defaultConfig() config {
	return config{
		name:    "singleton",
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures a Registry.
type Option func(*config)

// WithName sets the name used in logs, metrics, spans and errors.
// Default: "singleton"
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger enables structured logging of construction events.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpans sets the span manager used to trace constructions.
func WithSpans(s observability.SpanManager) Option {
	return func(c *config) {
		if s != nil {
			c.spans = s
		}
	}
}

// WithWaitTimeout bounds how long a caller waits for the construction lock.
// Zero means wait until the context is done.
func WithWaitTimeout(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.waitTimeout = d
		}
	}
}

// WithRetry retries transient constructor errors with backoff. The lock is
// held across retries, so waiters see either the final instance or the
// final error's empty slot.
//
// Example:
//
//	reg := singleton.New(connect, singleton.WithRetry(errors.NewRetryConfig(
//	    errors.WithMaxAttempts(5),
//	)))
func WithRetry(cfg perrors.RetryConfig) Option {
	return func(c *config) {
		c.retry = &cfg
	}
}
