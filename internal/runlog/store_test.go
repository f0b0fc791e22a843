package runlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := Summary{
		StartedAt:   time.UnixMilli(1700000000000),
		Duration:    3 * time.Second,
		Scraped:     12,
		Reused:      10,
		Looked:      2,
		Unresolved:  1,
		Regenerated: true,
	}
	second := Summary{
		StartedAt: time.UnixMilli(1700000100000),
		Duration:  time.Second,
		Scraped:   12,
	}

	if err := store.Record(ctx, first); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := store.Record(ctx, second); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	recent, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d summaries, want 2", len(recent))
	}
	if !recent[0].StartedAt.Equal(second.StartedAt) {
		t.Errorf("newest first expected, got %v", recent[0].StartedAt)
	}
	if recent[1] != first {
		t.Errorf("round trip mismatch: %+v", recent[1])
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		sum := Summary{StartedAt: time.UnixMilli(int64(1700000000000 + i*1000))}
		if err := store.Record(ctx, sum); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	recent, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("got %d summaries, want 3", len(recent))
	}
}

func TestNilStoreIsNoop(t *testing.T) {
	var store *Store
	if err := store.Record(context.Background(), Summary{}); err != nil {
		t.Errorf("nil store Record errored: %v", err)
	}
	recent, err := store.Recent(context.Background(), 5)
	if err != nil || recent != nil {
		t.Errorf("nil store Recent = %v, %v", recent, err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("nil store Close errored: %v", err)
	}
}
