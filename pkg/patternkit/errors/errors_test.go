package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{CategoryTransient, "transient"},
		{CategoryPermanent, "permanent"},
		{Category(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.category.String(); got != tt.expected {
				t.Errorf("Category(%d).String() = %s, want %s", tt.category, got, tt.expected)
			}
		})
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Category
	}{
		{"nil error", nil, CategoryPermanent},
		{"validation error", &ValidationError{Field: "name", Message: "empty"}, CategoryPermanent},
		{"timeout error", &TimeoutError{Operation: "boot", Duration: "1s"}, CategoryTransient},
		{"wrapped timeout", fmt.Errorf("boot: %w", &TimeoutError{Operation: "boot"}), CategoryTransient},
		{"categorized transient", Transient(errors.New("warming up"), "boot"), CategoryTransient},
		{"categorized permanent", Permanent(errors.New("bad"), "boot"), CategoryPermanent},
		{"context cancelled", context.Canceled, CategoryPermanent},
		{"unknown error", errors.New("unknown"), CategoryPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Categorize(tt.err); got != tt.expected {
				t.Errorf("Categorize() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestCategorizedError(t *testing.T) {
	t.Run("error message with context", func(t *testing.T) {
		err := NewCategorized(errors.New("failed"), CategoryTransient, "construct")
		expected := "construct: failed (category: transient, attempts: 0)"
		if got := err.Error(); got != expected {
			t.Errorf("Error() = %q, want %q", got, expected)
		}
	})

	t.Run("error message without context", func(t *testing.T) {
		err := &CategorizedError{Err: errors.New("failed"), Category: CategoryPermanent, Retries: 2}
		expected := "failed (category: permanent, attempts: 2)"
		if got := err.Error(); got != expected {
			t.Errorf("Error() = %q, want %q", got, expected)
		}
	})

	t.Run("unwrap", func(t *testing.T) {
		inner := errors.New("inner")
		err := Transient(inner, "ctx")
		if !errors.Is(err, inner) {
			t.Error("expected errors.Is to find inner error")
		}
	})
}

func TestValidationErrorMessage(t *testing.T) {
	withField := &ValidationError{Field: "name", Message: "must not be empty"}
	if got := withField.Error(); got != "validation error on name: must not be empty" {
		t.Errorf("Error() = %q", got)
	}

	noField := &ValidationError{Message: "bad input"}
	if got := noField.Error(); got != "validation error: bad input" {
		t.Errorf("Error() = %q", got)
	}
}

func fastRetry(attempts int) RetryConfig {
	return NewRetryConfig(
		WithMaxAttempts(attempts),
		WithInitialBackoff(time.Millisecond),
		WithMaxBackoff(5*time.Millisecond),
		WithJitter(0),
	)
}

func TestWithRetrySucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	result := WithRetry(fastRetry(3), func() (string, error) {
		calls++
		if calls < 3 {
			return "", Transient(errors.New("not yet"), "boot")
		}
		return "ready", nil
	})

	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Value != "ready" {
		t.Errorf("Value = %q, want ready", result.Value)
	}
	if result.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", result.Attempts)
	}
}

func TestWithRetryStopsOnPermanentError(t *testing.T) {
	calls := 0
	result := WithRetry(fastRetry(5), func() (int, error) {
		calls++
		return 0, &ValidationError{Field: "name", Message: "empty"}
	})

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	var valErr *ValidationError
	if !errors.As(result.Err, &valErr) {
		t.Errorf("expected ValidationError in chain, got %v", result.Err)
	}
}

func TestWithRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	result := WithRetry(fastRetry(3), func() (int, error) {
		calls++
		return 0, &TimeoutError{Operation: "boot", Duration: "1ms"}
	})

	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	var catErr *CategorizedError
	if !errors.As(result.Err, &catErr) {
		t.Fatalf("expected CategorizedError, got %T", result.Err)
	}
	if catErr.Context != "max retries exceeded" {
		t.Errorf("Context = %q", catErr.Context)
	}
}

func TestWithRetryZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	result := WithRetry(RetryConfig{}, func() (int, error) {
		calls++
		return 1, nil
	})

	if calls != 1 || result.Value != 1 {
		t.Errorf("calls = %d, value = %d", calls, result.Value)
	}
}

func TestWithRetryContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	result := WithRetryContext(ctx, fastRetry(3), func(context.Context) (int, error) {
		calls++
		return 0, nil
	})

	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
	if !errors.Is(result.Err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", result.Err)
	}
}

func TestCustomRetryableFunc(t *testing.T) {
	sentinel := errors.New("retry me")
	cfg := fastRetry(2)
	cfg.RetryableFunc = func(err error) bool { return errors.Is(err, sentinel) }

	calls := 0
	WithRetry(cfg, func() (int, error) {
		calls++
		return 0, sentinel
	})

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestCalculateBackoffWithoutJitter(t *testing.T) {
	if got := calculateBackoff(time.Second, 0); got != time.Second {
		t.Errorf("calculateBackoff() = %v, want 1s", got)
	}
}

func TestCalculateBackoffJitterBounds(t *testing.T) {
	for range 100 {
		got := calculateBackoff(time.Second, 0.5)
		if got < 500*time.Millisecond || got > 1500*time.Millisecond {
			t.Fatalf("calculateBackoff() = %v, out of bounds", got)
		}
	}
}
