// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestStore over an isolated Badger directory.
package storage

import (
	"testing"
	"time"

	"stepup/internal/kv"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	kvStore, err := kv.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test kv store: %v", err)
	}
	t.Cleanup(func() { kvStore.Close() })

	// Fixed, advancing clock so generated workout ids are unique and stable.
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var ticks int64
	return NewWithClock(kvStore, func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * time.Millisecond)
	})
}
