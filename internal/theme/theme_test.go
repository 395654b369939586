// ABOUTME: Tests for the theme context.
// ABOUTME: Checks the default mode and toggle persistence.
package theme

import (
	"context"
	"testing"

	"stepup/internal/kv"
	"stepup/internal/storage"
)

func setupTheme(t *testing.T) (*Context, *storage.Store) {
	t.Helper()
	kvStore, err := kv.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test kv store: %v", err)
	}
	t.Cleanup(func() { kvStore.Close() })
	store := storage.New(kvStore)
	return New(store), store
}

func TestDefaultsToLight(t *testing.T) {
	tc, _ := setupTheme(t)

	if err := tc.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tc.IsDark() {
		t.Error("theme should default to light")
	}
}

func TestTogglePersists(t *testing.T) {
	tc, store := setupTheme(t)
	ctx := context.Background()

	if err := tc.Toggle(ctx, true); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !tc.IsDark() {
		t.Error("IsDark = false after toggling dark")
	}

	// A fresh context sees the persisted preference
	fresh := New(store)
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !fresh.IsDark() {
		t.Error("persisted dark mode not picked up on load")
	}
}

func TestPaletteDiffersByMode(t *testing.T) {
	tc, _ := setupTheme(t)
	ctx := context.Background()

	light := tc.Colors()
	tc.Toggle(ctx, true)
	dark := tc.Colors()

	if light.Primary.Equals(dark.Primary) {
		t.Error("dark and light primary colors should differ")
	}
}
