// Package workerpool fans work items out to a bounded set of goroutines.
package workerpool

import (
	"context"
	"sync"
	"sync/atomic"
)

// Run processes every item with at most workers goroutines. The first
// error cancels the remaining work and is returned; a cancelled parent
// context surfaces as its context error.
func Run[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	if len(items) == 0 {
		return ctx.Err()
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		next     atomic.Int64
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				n := next.Add(1) - 1
				if n >= int64(len(items)) {
					return
				}
				if err := fn(ctx, items[n]); err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
					return
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
