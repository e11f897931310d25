// Package parallel provides the two concurrency primitives the collection
// pipeline needs: running a fixed set of independent operations on a bounded
// worker pool, and mapping a record list concurrently while preserving the
// input order of the results.
package parallel

import (
	"context"
	"sync"
)

// Run executes every fn on a pool of at most workers goroutines and waits
// for all of them to finish. The first error is kept and returned; a failed
// operation never cancels its siblings, their results are simply ignored by
// the caller.
func Run(ctx context.Context, workers int, fns ...func(context.Context) error) error {
	if workers <= 0 || workers > len(fns) {
		workers = len(fns)
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, fn := range fns {
		wg.Add(1)
		go func(fn func(context.Context) error) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := fn(ctx); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(fn)
	}

	wg.Wait()
	return firstErr
}

// Result is the outcome of mapping one item. A skipped result is omitted
// from the output list; the survivors keep their relative input order.
type Result[R any] struct {
	Value R
	Skip  bool
}

// Keep wraps a mapped value.
func Keep[R any](v R) Result[R] {
	return Result[R]{Value: v}
}

// Skip marks an item as dropped.
func Skip[R any]() Result[R] {
	return Result[R]{Skip: true}
}

// MapOrdered maps items concurrently on a pool of at most workers
// goroutines. Results are reassembled by original index, never by completion
// order, so the output preserves input order even though items finish in any
// order. The first error from fn is returned after all workers finish.
func MapOrdered[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, int, T) (Result[R], error)) ([]R, error) {
	if len(items) == 0 {
		return []R{}, nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	slots := make([]Result[R], len(items))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for i, item := range items {
		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res, err := fn(ctx, i, item)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				res = Skip[R]()
			}
			slots[i] = res
		}(i, item)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	out := make([]R, 0, len(items))
	for _, res := range slots {
		if !res.Skip {
			out = append(out, res.Value)
		}
	}
	return out, nil
}
