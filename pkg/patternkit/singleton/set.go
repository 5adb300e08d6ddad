package singleton

import (
	"context"
	"slices"

	"github.com/randalmurphal/patternkit/pkg/patternkit/registry"
)

// Set holds one Registry per resource name, all sharing a constructor and
// options. Each registry is named after its key.
type Set[T any] struct {
	construct  Constructor[T]
	opts       []Option
	registries *registry.Registry[string, *Registry[T]]
}

// NewSet creates an empty set. It panics if construct is nil.
func NewSet[T any](construct Constructor[T], opts ...Option) *Set[T] {
	if construct == nil {
		panic("singleton: nil constructor")
	}
	return &Set[T]{
		construct:  construct,
		opts:       opts,
		registries: registry.New[string, *Registry[T]](),
	}
}

// Registry returns the registry for name, creating an empty one on first use.
func (s *Set[T]) Registry(name string) *Registry[T] {
	return s.registries.GetOrCreate(name, func() *Registry[T] {
		opts := append(slices.Clone(s.opts), WithName(name))
		return New(s.construct, opts...)
	})
}

// GetOrCreate returns the named instance, constructing it from arg if needed.
func (s *Set[T]) GetOrCreate(name, arg string) (T, error) {
	return s.Registry(name).GetOrCreate(arg)
}

// GetOrCreateContext is GetOrCreate with a context.
func (s *Set[T]) GetOrCreateContext(ctx context.Context, name, arg string) (T, error) {
	return s.Registry(name).GetOrCreateContext(ctx, arg)
}

// Names returns the known names in sorted order, constructed or not.
func (s *Set[T]) Names() []string {
	names := s.registries.Keys()
	slices.Sort(names)
	return names
}
