package utils

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelForEach(t *testing.T) {
	t.Parallel()

	t.Run("runs every item", func(t *testing.T) {
		var sum atomic.Int64
		items := []int{1, 2, 3, 4, 5}

		errs := ParallelForEach(context.Background(), items, 3, func(ctx context.Context, n int) error {
			sum.Add(int64(n))
			return nil
		})

		require.Len(t, errs, len(items))
		assert.NoError(t, JoinErrors(errs))
		assert.Equal(t, int64(15), sum.Load())
	})

	t.Run("errors aligned with items", func(t *testing.T) {
		items := []string{"ok", "bad", "ok"}
		errs := ParallelForEach(context.Background(), items, 2, func(ctx context.Context, s string) error {
			if s == "bad" {
				return errors.New("bad item")
			}
			return nil
		})

		assert.NoError(t, errs[0])
		assert.EqualError(t, errs[1], "bad item")
		assert.NoError(t, errs[2])
	})

	t.Run("empty input", func(t *testing.T) {
		errs := ParallelForEach(context.Background(), []int{}, 4, func(ctx context.Context, n int) error {
			t.Fatal("should not be called")
			return nil
		})
		assert.Empty(t, errs)
	})

	t.Run("non-positive workers", func(t *testing.T) {
		var calls atomic.Int32
		errs := ParallelForEach(context.Background(), []int{1, 2}, 0, func(ctx context.Context, n int) error {
			calls.Add(1)
			return nil
		})
		assert.Len(t, errs, 2)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		errs := ParallelForEach(ctx, []int{1, 2, 3}, 1, func(ctx context.Context, n int) error {
			time.Sleep(time.Millisecond)
			return nil
		})

		require.Len(t, errs, 3)
		assert.ErrorIs(t, JoinErrors(errs), context.Canceled)
	})
}

func TestErrorHelpers(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")
	errs := []error{nil, errA, nil, errB}

	assert.Equal(t, []error{errA, errB}, CollectErrors(errs))
	assert.Nil(t, CollectErrors(nil))

	joined := JoinErrors(errs)
	assert.ErrorIs(t, joined, errA)
	assert.ErrorIs(t, joined, errB)
	assert.NoError(t, JoinErrors([]error{nil}))
}
