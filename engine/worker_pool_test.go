package engine

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	t.Run("SubmitExecutesTask", func(t *testing.T) {
		pool := NewWorkerPool(2)
		defer pool.Close()

		done := make(chan struct{})
		require.NoError(t, pool.Submit(context.Background(), func() { close(done) }))
		<-done
	})

	t.Run("SubmitAfterCloseFails", func(t *testing.T) {
		pool := NewWorkerPool(1)
		pool.Close()

		err := pool.Submit(context.Background(), func() {})
		assert.ErrorIs(t, err, ErrPoolClosed)
	})

	t.Run("CloseIsIdempotent", func(t *testing.T) {
		pool := NewWorkerPool(1)
		pool.Close()
		pool.Close()
	})

	t.Run("DefaultSize", func(t *testing.T) {
		pool := NewWorkerPool(0)
		defer pool.Close()

		assert.Positive(t, pool.NumWorkers())
	})
}

func TestWorkerPoolMap(t *testing.T) {
	t.Run("CoversEveryIndexExactlyOnce", func(t *testing.T) {
		pool := NewWorkerPool(4)
		defer pool.Close()

		const n = 103
		seen := make([]int32, n)
		err := pool.Map(context.Background(), n, func(_, start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		})
		require.NoError(t, err)

		for i, c := range seen {
			assert.Equal(t, int32(1), c, "index %d", i)
		}
	})

	t.Run("ChunkIndicesAreDense", func(t *testing.T) {
		pool := NewWorkerPool(3)
		defer pool.Close()

		var mask atomic.Int32
		err := pool.Map(context.Background(), 9, func(chunk, _, _ int) {
			mask.Add(1 << chunk)
		})
		require.NoError(t, err)
		assert.Equal(t, int32(0b111), mask.Load())
	})

	t.Run("FewerItemsThanWorkers", func(t *testing.T) {
		pool := NewWorkerPool(8)
		defer pool.Close()

		var count atomic.Int32
		err := pool.Map(context.Background(), 2, func(_, start, end int) {
			count.Add(int32(end - start))
		})
		require.NoError(t, err)
		assert.Equal(t, int32(2), count.Load())
	})

	t.Run("EmptyRange", func(t *testing.T) {
		pool := NewWorkerPool(2)
		defer pool.Close()

		assert.NoError(t, pool.Map(context.Background(), 0, func(_, _, _ int) {
			t.Fatal("must not be called")
		}))
	})

	t.Run("ClosedPool", func(t *testing.T) {
		pool := NewWorkerPool(2)
		pool.Close()

		err := pool.Map(context.Background(), 4, func(_, _, _ int) {})
		assert.ErrorIs(t, err, ErrPoolClosed)
	})
}
