package journal

import "sync"

// MemoryStore is an in-memory journal.
// Data is lost when the process exits.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
	closed  bool
}

// NewMemoryStore creates an empty in-memory journal.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append implements Store.
func (m *MemoryStore) Append(e Entry) (Entry, error) {
	e, err := prepare(e)
	if err != nil {
		return Entry{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Entry{}, ErrStoreClosed
	}

	e.Seq = len(m.entries) + 1
	m.entries = append(m.entries, e)
	return e, nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}
	return append([]Entry{}, m.entries...), nil
}

// Len implements Store.
func (m *MemoryStore) Len() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return 0, ErrStoreClosed
	}
	return len(m.entries), nil
}

// Clear implements Store.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	m.entries = nil
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.entries = nil
	return nil
}
