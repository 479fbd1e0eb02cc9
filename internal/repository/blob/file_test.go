package blob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jobtrack/internal/domain"
)

func TestFileStoreAbsentSlot(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	data, err := store.Get(ctx, "jobs")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Errorf("absent slot should read as nil, got %q", data)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	payload := []byte(`[{"id":1}]`)
	if err := store.Put(ctx, "jobs", payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	data, err := store.Get(ctx, "jobs")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("got %q, want %q", data, payload)
	}

	// Replacing the slot leaves no temp files behind
	if err := store.Put(ctx, "jobs", []byte(`[]`)); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".tmp" {
			t.Errorf("leftover temp file %s", entry.Name())
		}
	}
}

func TestFileStoreSlotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Put(ctx, "jobs", []byte(`[1]`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, "reminders", []byte(`[2]`)); err != nil {
		t.Fatal(err)
	}

	jobs, _ := store.Get(ctx, "jobs")
	reminders, _ := store.Get(ctx, "reminders")
	if string(jobs) != `[1]` || string(reminders) != `[2]` {
		t.Errorf("slots bled into each other: jobs=%q reminders=%q", jobs, reminders)
	}
}

func TestFileStoreRejectsBadKeys(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"", "../escape", "UPPER", "has space"} {
		if err := store.Put(ctx, key, []byte(`x`)); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("key %q: got %v, want validation error", key, err)
		}
	}
}
