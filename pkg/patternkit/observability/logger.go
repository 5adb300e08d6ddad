// Package observability provides structured logging, metrics, and tracing
// for patternkit registries.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds registry context to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "os")
//	enriched.Info("launching") // includes registry=os
func EnrichLogger(logger *slog.Logger, registry string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("registry", registry))
}

// LogConstructStart logs the start of an instance construction.
func LogConstructStart(logger *slog.Logger, registry, arg string) {
	if logger == nil {
		return
	}
	logger.Debug("construction starting",
		slog.String("registry", registry),
		slog.String("arg", arg),
	)
}

// LogConstructComplete logs a successful construction.
func LogConstructComplete(logger *slog.Logger, registry, arg string, durationMs float64, attempts int) {
	if logger == nil {
		return
	}
	logger.Info("instance constructed",
		slog.String("registry", registry),
		slog.String("arg", arg),
		slog.Float64("duration_ms", durationMs),
		slog.Int("attempts", attempts),
	)
}

// LogConstructError logs a failed construction. The slot stays empty.
func LogConstructError(logger *slog.Logger, registry, arg string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("construction failed",
		slog.String("registry", registry),
		slog.String("arg", arg),
		slog.String("error", err.Error()),
	)
}

// LogArgIgnored logs a call whose argument lost to an existing instance.
func LogArgIgnored(logger *slog.Logger, registry, arg string) {
	if logger == nil {
		return
	}
	logger.Debug("instance exists, argument ignored",
		slog.String("registry", registry),
		slog.String("arg", arg),
	)
}

// LogWaitTimeout logs a caller giving up on the construction lock.
func LogWaitTimeout(logger *slog.Logger, registry string, timeout time.Duration) {
	if logger == nil {
		return
	}
	logger.Warn("gave up waiting for construction",
		slog.String("registry", registry),
		slog.Duration("timeout", timeout),
	)
}
