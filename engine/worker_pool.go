package engine

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool manages a fixed pool of goroutines for the CPU-bound phases
// of training and recall: the Hebbian pattern reduction and the per-step
// neuron partition of synchronous updates. A single pool is shared by both
// so parallelism stays bounded per network.
type WorkerPool struct {
	numWorkers int
	workCh     chan func()
	stopCh     chan struct{}
	wg         sync.WaitGroup
	closed     atomic.Bool
	submitMu   sync.RWMutex
}

// NewWorkerPool creates a worker pool with numWorkers goroutines.
// If numWorkers <= 0, runtime.GOMAXPROCS(0) is used.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	wp := &WorkerPool{
		numWorkers: numWorkers,
		workCh:     make(chan func(), numWorkers*2),
		stopCh:     make(chan struct{}),
	}

	wp.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go wp.worker()
	}

	return wp
}

// NumWorkers returns the fixed pool size.
func (wp *WorkerPool) NumWorkers() int { return wp.numWorkers }

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for {
		select {
		case <-wp.stopCh:
			// Drain remaining work before exiting
			for {
				select {
				case workFunc, ok := <-wp.workCh:
					if !ok {
						return
					}
					workFunc()
				default:
					return
				}
			}
		case workFunc, ok := <-wp.workCh:
			if !ok {
				return
			}
			workFunc()
		}
	}
}

// Submit enqueues a task and returns immediately.
//
// It fails with ErrPoolClosed if the pool is closed, or with the context
// error if ctx is cancelled before the task is enqueued.
func (wp *WorkerPool) Submit(ctx context.Context, task func()) error {
	wp.submitMu.RLock()
	defer wp.submitMu.RUnlock()

	if wp.closed.Load() {
		return ErrPoolClosed
	}

	select {
	case wp.workCh <- task:
		return nil
	case <-wp.stopCh:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Map partitions [0, n) into at most NumWorkers contiguous chunks, runs
// fn(chunk, start, end) on the pool for each, and blocks until every chunk
// completes. Chunk indices are dense starting at 0, so callers can merge
// per-chunk results in a fixed, deterministic order.
func (wp *WorkerPool) Map(ctx context.Context, n int, fn func(chunk, start, end int)) error {
	if n <= 0 {
		return nil
	}

	chunks := wp.numWorkers
	if chunks > n {
		chunks = n
	}

	var wg sync.WaitGroup

	size := n / chunks
	rem := n % chunks
	start := 0
	for c := 0; c < chunks; c++ {
		end := start + size
		if c < rem {
			end++
		}

		c, s, e := c, start, end
		wg.Add(1)
		if err := wp.Submit(ctx, func() {
			defer wg.Done()
			fn(c, s, e)
		}); err != nil {
			wg.Done()
			// Wait for chunks already enqueued before reporting failure.
			wg.Wait()
			return err
		}

		start = end
	}

	wg.Wait()
	return nil
}

// Close shuts down the worker pool gracefully.
func (wp *WorkerPool) Close() {
	if !wp.closed.CompareAndSwap(false, true) {
		return
	}

	wp.submitMu.Lock()
	close(wp.stopCh)
	close(wp.workCh)
	wp.submitMu.Unlock()

	wp.wg.Wait()
}
