// Package resource bounds the shared resources consumed outside the hot
// recall path: the number of concurrent batch relaxations and the IO
// throughput of snapshot transfers.
package resource

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxConcurrentRecalls caps the relaxations running in parallel
	// during a batch recall. If 0, defaults to runtime.GOMAXPROCS(0).
	MaxConcurrentRecalls int64

	// SnapshotBytesPerSec is the maximum IO throughput for snapshot
	// save/load transfers. If 0, unlimited.
	SnapshotBytesPerSec int64
}

// Controller manages the limits of Config. A nil Controller is valid and
// enforces nothing.
type Controller struct {
	cfg Config

	recallSem *semaphore.Weighted
	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentRecalls <= 0 {
		cfg.MaxConcurrentRecalls = int64(runtime.GOMAXPROCS(0))
	}

	c := &Controller{
		cfg:       cfg,
		recallSem: semaphore.NewWeighted(cfg.MaxConcurrentRecalls),
	}

	if cfg.SnapshotBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.SnapshotBytesPerSec), int(cfg.SnapshotBytesPerSec))
	}

	return c
}

// AcquireRecall reserves a relaxation slot, blocking until one is free or
// ctx is cancelled.
func (c *Controller) AcquireRecall(ctx context.Context) error {
	if c == nil {
		return nil
	}

	return c.recallSem.Acquire(ctx, 1)
}

// ReleaseRecall releases a relaxation slot.
func (c *Controller) ReleaseRecall() {
	if c == nil {
		return
	}

	c.recallSem.Release(1)
}

// AcquireIO waits until the snapshot IO limit allows the specified number
// of bytes. Requests larger than the limiter burst are split so they can
// never starve.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}

	burst := c.ioLimiter.Burst()
	for bytes > 0 {
		n := bytes
		if n > burst {
			n = burst
		}
		if err := c.ioLimiter.WaitN(ctx, n); err != nil {
			return err
		}
		bytes -= n
	}

	return nil
}
