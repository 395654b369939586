// ABOUTME: Tests for the Badger-backed key-value store.
// ABOUTME: Validates get/set/delete semantics and reopen persistence.
package kv

import (
	"context"
	"errors"
	"testing"
)

func setupTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetAndGet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "greeting", []byte("hello")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(ctx, "greeting")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("Get = %q, want hello", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), "never_written")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get missing key = %v, want ErrKeyNotFound", err)
	}
}

func TestSetOverwrites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	store.Set(ctx, "k", []byte("first"))
	store.Set(ctx, "k", []byte("second"))

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get = %q, want second", got)
	}
}

func TestDelete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	store.Set(ctx, "k", []byte("v"))
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err := store.Get(ctx, "k")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get after delete = %v, want ErrKeyNotFound", err)
	}

	// Deleting a missing key is a no-op
	if err := store.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete missing key = %v, want nil", err)
	}
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Set(ctx, "k", []byte("survives")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(got) != "survives" {
		t.Errorf("Get = %q, want survives", got)
	}
}

func TestCanceledContext(t *testing.T) {
	store := setupTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := store.Set(ctx, "k", []byte("v")); err == nil {
		t.Error("Set with canceled context should fail")
	}
	if _, err := store.Get(ctx, "k"); err == nil {
		t.Error("Get with canceled context should fail")
	}
}
