package utils

import (
	"context"
	"errors"
	"sync"
)

// ParallelForEach runs fn for every item using at most workers goroutines.
// The returned slice is aligned with items; an item skipped because ctx
// was cancelled reports ctx.Err().
func ParallelForEach[T any](ctx context.Context, items []T, workers int, fn func(context.Context, T) error) []error {
	errs := make([]error, len(items))
	if len(items) == 0 {
		return errs
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	done := make([]bool, len(items))
	taskChan := make(chan int, len(items))
	var wg sync.WaitGroup
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-taskChan:
					if !ok || ctx.Err() != nil {
						return
					}
					err := fn(ctx, items[idx])
					mu.Lock()
					errs[idx] = err
					done[idx] = true
					mu.Unlock()
				}
			}
		}()
	}

	for i := range items {
		taskChan <- i
	}
	close(taskChan)
	wg.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		for i := range errs {
			if !done[i] {
				errs[i] = ctxErr
			}
		}
	}

	return errs
}

// CollectErrors collects all non-nil errors from a slice
func CollectErrors(errs []error) []error {
	var result []error
	for _, err := range errs {
		if err != nil {
			result = append(result, err)
		}
	}
	return result
}

// JoinErrors joins all non-nil errors, or returns nil
func JoinErrors(errs []error) error {
	return errors.Join(CollectErrors(errs)...)
}
