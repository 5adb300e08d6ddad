package registry

import "sync"

// Registry is a thread-safe registry for values indexed by key.
type Registry[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New creates a new empty registry.
func New[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		entries: make(map[K]V),
	}
}

// Register adds or replaces the value for key.
func (r *Registry[K, V]) Register(key K, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = value
}

// Get returns the value for a key and whether it exists.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	return v, ok
}

// Has reports whether key is registered.
func (r *Registry[K, V]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Delete removes a key. Deleting a missing key is a no-op.
func (r *Registry[K, V]) Delete(key K) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}

// Keys returns all keys in unspecified order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]K, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Range calls fn for each entry of a snapshot taken under the read lock.
// Iteration stops when fn returns false.
func (r *Registry[K, V]) Range(fn func(K, V) bool) {
	r.mu.RLock()
	snapshot := make(map[K]V, len(r.entries))
	for k, v := range r.entries {
		snapshot[k] = v
	}
	r.mu.RUnlock()

	for k, v := range snapshot {
		if !fn(k, v) {
			return
		}
	}
}

// GetOrCreate returns the value for key, creating it with factory if absent.
// The factory runs at most once per key, even under concurrent access.
func (r *Registry[K, V]) GetOrCreate(key K, factory func() V) V {
	v, _ := r.GetOrCreateErr(key, func() (V, error) {
		return factory(), nil
	})
	return v
}

// GetOrCreateErr is GetOrCreate for factories that can fail.
// On error nothing is stored and the error is returned to this caller only.
func (r *Registry[K, V]) GetOrCreateErr(key K, factory func() (V, error)) (V, error) {
	// Fast path: check if already exists
	r.mu.RLock()
	v, ok := r.entries[key]
	r.mu.RUnlock()
	if ok {
		return v, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if v, ok := r.entries[key]; ok {
		return v, nil
	}

	v, err := factory()
	if err != nil {
		var zero V
		return zero, err
	}
	r.entries[key] = v
	return v, nil
}
