package resolve

import (
	"context"
	"sync"
	"time"
)

// InBatches runs fn over items in fixed-size batches. Items within a batch run
// concurrently; the call blocks until the batch completes, then pauses before
// the next batch starts. Results are returned in input order. Cancelling the
// context cuts a pause short and returns whatever has been produced so far;
// slots for items never reached keep their zero value, so callers that
// persist the results must check ctx.Err first.
func InBatches[T, R any](ctx context.Context, items []T, width int, pause time.Duration, fn func(context.Context, T) R) []R {
	if width <= 0 {
		width = 1
	}

	results := make([]R, len(items))
	for start := 0; start < len(items); start += width {
		end := min(start+width, len(items))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = fn(ctx, items[i])
			}()
		}
		wg.Wait()

		if end < len(items) && pause > 0 {
			select {
			case <-time.After(pause):
			case <-ctx.Done():
				return results
			}
		}
	}
	return results
}
