package singleton

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"

	perrors "github.com/randalmurphal/patternkit/pkg/patternkit/errors"
	"github.com/randalmurphal/patternkit/pkg/patternkit/observability"
)

// Constructor builds the instance from the winning caller's argument.
type Constructor[T any] func(ctx context.Context, arg string) (T, error)

// slot is the published instance together with the argument that built it.
// It is never modified after it is stored.
type slot[T any] struct {
	value T
	arg   string
}

// Registry holds at most one lazily constructed instance of T.
type Registry[T any] struct {
	construct Constructor[T]
	cfg       config

	instance atomic.Pointer[slot[T]]

	// lock is a one-slot semaphore: sending acquires, receiving releases.
	lock chan struct{}

	constructions atomic.Int64
	waiting       atomic.Int32 // callers blocked in acquire
}

// New creates an empty registry that builds its instance with construct.
// It panics if construct is nil.
func New[T any](construct Constructor[T], opts ...Option) *Registry[T] {
	if construct == nil {
		panic("singleton: nil constructor")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry[T]{
		construct: construct,
		cfg:       cfg,
		lock:      make(chan struct{}, 1),
	}
}

// Name returns the registry name.
func (r *Registry[T]) Name() string {
	return r.cfg.name
}

// GetOrCreate returns the instance, constructing it from arg if none exists.
// Once an instance exists arg is ignored.
func (r *Registry[T]) GetOrCreate(arg string) (T, error) {
	return r.GetOrCreateContext(context.Background(), arg)
}

// GetOrCreateContext is GetOrCreate with a context that bounds the wait for
// the construction lock and is passed to the constructor.
func (r *Registry[T]) GetOrCreateContext(ctx context.Context, arg string) (T, error) {
	// Fast path: already published
	if s := r.instance.Load(); s != nil {
		r.hit(ctx, s, arg)
		return s.value, nil
	}

	var zero T
	if err := r.acquire(ctx); err != nil {
		return zero, err
	}
	defer r.release()

	// Double-check after acquiring the lock
	if s := r.instance.Load(); s != nil {
		r.hit(ctx, s, arg)
		return s.value, nil
	}

	return r.build(ctx, arg)
}

// Get returns the instance without constructing one.
func (r *Registry[T]) Get() (T, bool) {
	if s := r.instance.Load(); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// Arg returns the argument the instance was built from.
func (r *Registry[T]) Arg() (string, bool) {
	if s := r.instance.Load(); s != nil {
		return s.arg, true
	}
	return "", false
}

// Constructed reports whether the instance exists.
func (r *Registry[T]) Constructed() bool {
	return r.instance.Load() != nil
}

// Constructions returns how many times the constructor has been invoked,
// counting failed attempts and retries.
func (r *Registry[T]) Constructions() int64 {
	return r.constructions.Load()
}

func (r *Registry[T]) hit(ctx context.Context, s *slot[T], arg string) {
	r.cfg.metrics.RecordFastPathHit(ctx, r.cfg.name)
	if arg != s.arg {
		observability.LogArgIgnored(r.cfg.logger, r.cfg.name, arg)
	}
}

// acquire takes the lock, giving up when ctx is done or the configured wait
// timeout elapses.
func (r *Registry[T]) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case r.lock <- struct{}{}:
		return nil
	default:
	}

	wait := ctx
	if r.cfg.waitTimeout > 0 {
		var cancel context.CancelFunc
		wait, cancel = context.WithTimeout(ctx, r.cfg.waitTimeout)
		defer cancel()
	}

	r.waiting.Add(1)
	defer r.waiting.Add(-1)

	select {
	case r.lock <- struct{}{}:
		return nil
	case <-wait.Done():
		if err := ctx.Err(); err != nil {
			return err
		}
		r.cfg.metrics.RecordWaitTimeout(ctx, r.cfg.name)
		observability.LogWaitTimeout(r.cfg.logger, r.cfg.name, r.cfg.waitTimeout)
		return ErrWaitTimeout
	}
}

func (r *Registry[T]) release() {
	<-r.lock
}

// build runs the constructor and publishes the result. Must hold the lock.
func (r *Registry[T]) build(ctx context.Context, arg string) (T, error) {
	ctx, span := r.cfg.spans.StartConstructSpan(ctx, r.cfg.name, arg)
	observability.LogConstructStart(r.cfg.logger, r.cfg.name, arg)
	start := time.Now()

	attempts := 0
	attempt := func(ctx context.Context) (T, error) {
		attempts++
		r.constructions.Add(1)
		if attempts > 1 {
			r.cfg.spans.AddSpanEvent(ctx, "retry", attribute.Int("attempt", attempts))
		}
		return r.construct(ctx, arg)
	}

	var (
		value T
		err   error
	)
	if r.cfg.retry != nil {
		res := perrors.WithRetryContext(ctx, *r.cfg.retry, attempt)
		value, err = res.Value, res.Err
	} else {
		value, err = attempt(ctx)
	}

	elapsed := time.Since(start)
	r.cfg.metrics.RecordConstruction(ctx, r.cfg.name, elapsed, err)

	if err != nil {
		cerr := &ConstructionError{
			Registry: r.cfg.name,
			Arg:      arg,
			Attempts: attempts,
			Err:      err,
		}
		observability.LogConstructError(r.cfg.logger, r.cfg.name, arg, err)
		r.cfg.spans.EndSpanWithError(span, cerr)
		var zero T
		return zero, cerr
	}

	r.instance.Store(&slot[T]{value: value, arg: arg})
	observability.LogConstructComplete(r.cfg.logger, r.cfg.name, arg, float64(elapsed.Milliseconds()), attempts)
	r.cfg.spans.EndSpanWithError(span, nil)
	return value, nil
}
