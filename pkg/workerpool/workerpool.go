// Package workerpool runs a bounded number of workers over a list of items.
package workerpool

import (
	"context"
	"sync"

	"go.uber.org/multierr"
)

// Process runs process for every item on workerCount workers. The first error
// cancels the remaining work, invokes onCancel and is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	run(ctx, workerCount, items, func(ctx context.Context, item T) bool {
		if err := process(ctx, item); err != nil {
			once.Do(func() {
				firstErr = err
				if onCancel != nil {
					onCancel()
				}
				cancel()
			})
			return false
		}
		return true
	})

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Each runs process for every item on workerCount workers without stopping on
// failure. All errors are combined into one.
func Each[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
) error {
	var (
		mu  sync.Mutex
		err error
	)
	run(ctx, workerCount, items, func(ctx context.Context, item T) bool {
		if perr := process(ctx, item); perr != nil {
			mu.Lock()
			err = multierr.Append(err, perr)
			mu.Unlock()
		}
		return true
	})
	return multierr.Append(err, ctx.Err())
}

// run feeds items to the workers until they are exhausted, ctx ends or a
// worker's handle returns false.
func run[T any](ctx context.Context, workerCount int, items []T, handle func(context.Context, T) bool) {
	if workerCount < 1 {
		workerCount = 1
	}
	tasks := make(chan T, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok || !handle(ctx, item) {
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()
}
