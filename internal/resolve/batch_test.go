package resolve

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestInBatchesPreservesInputOrder(t *testing.T) {
	items := []int{5, 4, 3, 2, 1, 0}
	results := InBatches(context.Background(), items, 2, 0, func(_ context.Context, n int) int {
		return n * 10
	})
	for i, item := range items {
		if results[i] != item*10 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], item*10)
		}
	}
}

func TestInBatchesBoundsConcurrency(t *testing.T) {
	var active, peak atomic.Int32
	var mu sync.Mutex

	items := make([]int, 20)
	InBatches(context.Background(), items, 5, 0, func(_ context.Context, n int) int {
		current := active.Add(1)
		mu.Lock()
		if current > peak.Load() {
			peak.Store(current)
		}
		mu.Unlock()
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
		return n
	})

	if got := peak.Load(); got > 5 {
		t.Errorf("peak concurrency %d exceeds batch width 5", got)
	}
}

func TestInBatchesPausesBetweenBatches(t *testing.T) {
	items := make([]int, 10)
	pause := 30 * time.Millisecond

	start := time.Now()
	InBatches(context.Background(), items, 5, pause, func(_ context.Context, n int) int {
		return n
	})
	elapsed := time.Since(start)

	// Two batches means one pause; no trailing pause after the final batch.
	if elapsed < pause {
		t.Errorf("elapsed %v, expected at least one %v pause", elapsed, pause)
	}
	if elapsed > 3*pause {
		t.Errorf("elapsed %v, expected no trailing pause", elapsed)
	}
}

func TestInBatchesCancelledContextCutsPauseShort(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make([]int, 10)
	start := time.Now()
	results := InBatches(ctx, items, 5, time.Hour, func(_ context.Context, n int) int {
		return n
	})
	if time.Since(start) > time.Second {
		t.Fatal("cancelled context did not cut the pause short")
	}
	if len(results) != 10 {
		t.Errorf("got %d results, want slots for all items", len(results))
	}
}

func TestInBatchesEmptyInput(t *testing.T) {
	results := InBatches(context.Background(), nil, 5, time.Hour, func(_ context.Context, n int) int {
		t.Fatal("fn should not run for empty input")
		return n
	})
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}
