package benchmarks

import (
	"path/filepath"
	"testing"

	"github.com/randalmurphal/patternkit/pkg/patternkit/journal"
)

func entry() journal.Entry {
	return journal.Entry{Slot: 1, Command: "volume-up", Action: journal.ActionExecute}
}

// BenchmarkMemoryStore_Append measures in-memory journal appends.
func BenchmarkMemoryStore_Append(b *testing.B) {
	store := journal.NewMemoryStore()
	defer store.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Append(entry())
	}
}

// BenchmarkSQLiteStore_Append measures SQLite journal appends.
func BenchmarkSQLiteStore_Append(b *testing.B) {
	store, err := journal.NewSQLiteStore(filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatal(err)
	}
	defer store.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Append(entry())
	}
}

// BenchmarkSQLiteStore_List measures listing a 100-entry journal.
func BenchmarkSQLiteStore_List(b *testing.B) {
	store, err := journal.NewSQLiteStore(":memory:")
	if err != nil {
		b.Fatal(err)
	}
	defer store.Close()
	for range 100 {
		if _, err := store.Append(entry()); err != nil {
			b.Fatal(err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.List()
	}
}
