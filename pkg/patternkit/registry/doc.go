// Package registry provides a generic thread-safe registry for values indexed by key.
//
// Registry is designed for read-heavy workloads using sync.RWMutex. It supports
// any comparable key type and any value type through Go generics.
//
// # Lookup Tables
//
// The pattern packages use registries as name-to-constructor tables:
//
//	developers := registry.New[string, func(company string) Developer]()
//	developers.Register("panel", NewPanelDeveloper)
//
//	ctor, ok := developers.Get("panel")
//	if ok {
//	    dev := ctor("Blockhouse Ltd")
//	    // use dev...
//	}
//
// # Lazy Initialization
//
// GetOrCreate and GetOrCreateErr construct a value on first access with
// double-checked locking: an uncontended read-locked probe, then a write-locked
// re-check before the factory runs.
//
//	slots := registry.New[string, *Slot]()
//	slot := slots.GetOrCreate("os", func() *Slot { return NewSlot("os") })
//
// The factory is called at most once per key, even under concurrent access.
// GetOrCreateErr stores nothing when the factory fails, so a later call retries.
//
// # Thread Safety
//
// All Registry methods are safe for concurrent use. Range iterates over a
// snapshot, so Register and Delete may be called from inside the callback.
package registry
