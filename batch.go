// Package hopgo provides an embedded Hopfield associative memory.
//
// This file implements batch recall: relaxing many states concurrently
// against the same trained weight matrix.
package hopgo

import (
	"context"
	"math"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hopgo/engine"
	"github.com/hupe1980/hopgo/internal/mat"
	"github.com/hupe1980/hopgo/pattern"
)

// BatchRecallResult represents the result of a batch recall. Result and
// error slices are index-aligned with the input states: exactly one of
// Results[i] and Errors[i] is non-nil for every i.
type BatchRecallResult struct {
	Results []*RecallResult // nil for failed states
	Errors  []error         // nil for successful states
}

// Failed returns the number of states that did not produce a result.
func (r *BatchRecallResult) Failed() int {
	failed := 0
	for _, err := range r.Errors {
		if err != nil {
			failed++
		}
	}

	return failed
}

// BatchRecall creates a fluent builder for relaxing multiple states.
// States run concurrently against the same weight matrix; input order is
// preserved in the result.
//
// Example:
//
//	result := net.BatchRecall(states).
//	    Async().
//	    Seed(42).
//	    Execute(ctx)
func (n *Network) BatchRecall(states [][]float64) *BatchRecallBuilder {
	return &BatchRecallBuilder{
		net:    n,
		states: states,
	}
}

// BatchRecallBuilder is a fluent builder for constructing batch recalls.
// The configuration applies to every state in the batch.
type BatchRecallBuilder struct {
	net         *Network
	states      [][]float64
	cfg         engine.Config
	concurrency int
}

// Sync selects synchronous dynamics for every state. This is the default.
func (bb *BatchRecallBuilder) Sync() *BatchRecallBuilder {
	bb.cfg.Mode = engine.ModeSynchronous
	return bb
}

// Async selects asynchronous dynamics for every state.
func (bb *BatchRecallBuilder) Async() *BatchRecallBuilder {
	bb.cfg.Mode = engine.ModeAsynchronous
	return bb
}

// AsyncBlocked selects block-parallel asynchronous dynamics for every state.
func (bb *BatchRecallBuilder) AsyncBlocked() *BatchRecallBuilder {
	bb.cfg.Mode = engine.ModeAsyncBlocked
	return bb
}

// Sequential visits units in index order every asynchronous sweep.
// This is the default.
func (bb *BatchRecallBuilder) Sequential() *BatchRecallBuilder {
	bb.cfg.SweepOrder = engine.SweepSequential
	return bb
}

// RandomPerSweep visits units in a fresh random permutation each
// asynchronous sweep. Each state derives its own sweep seed from Seed and
// its batch index, so a fixed Seed reproduces the whole batch.
func (bb *BatchRecallBuilder) RandomPerSweep() *BatchRecallBuilder {
	bb.cfg.SweepOrder = engine.SweepRandomPerSweep
	return bb
}

// MaxIterations caps the number of update steps per state.
func (bb *BatchRecallBuilder) MaxIterations(n int) *BatchRecallBuilder {
	bb.cfg.MaxIterations = n
	return bb
}

// Bias sets per-neuron firing thresholds shared by every state.
func (bb *BatchRecallBuilder) Bias(bias []float64) *BatchRecallBuilder {
	bb.cfg.Bias = bias
	return bb
}

// Seed fixes the base seed for reproducible random sweeps.
// Zero selects a random seed per state.
func (bb *BatchRecallBuilder) Seed(seed int64) *BatchRecallBuilder {
	bb.cfg.Seed = seed
	return bb
}

// Concurrency caps the number of states relaxing at once. Defaults to the
// network's worker count.
func (bb *BatchRecallBuilder) Concurrency(n int) *BatchRecallBuilder {
	bb.concurrency = n
	return bb
}

// Execute runs the batch and returns index-aligned results. Per-state
// failures are reported in BatchRecallResult.Errors; Execute itself never
// panics on partial failure.
func (bb *BatchRecallBuilder) Execute(ctx context.Context) *BatchRecallResult {
	start := time.Now()

	result := bb.execute(ctx)

	failed := result.Failed()
	bb.net.metrics.RecordBatchRecall(len(bb.states), failed, time.Since(start))
	bb.net.logger.LogBatchRecall(ctx, len(bb.states), failed)

	return result
}

func (bb *BatchRecallBuilder) execute(ctx context.Context) *BatchRecallResult {
	result := &BatchRecallResult{
		Results: make([]*RecallResult, len(bb.states)),
		Errors:  make([]error, len(bb.states)),
	}

	w := bb.net.weights.Load()
	if w == nil {
		for i := range result.Errors {
			result.Errors[i] = ErrNotTrained
		}

		return result
	}

	limit := bb.concurrency
	if limit <= 0 {
		limit = bb.net.pool.NumWorkers()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, initial := range bb.states {
		g.Go(func() error {
			result.Results[i], result.Errors[i] = bb.recallOne(gctx, w, i, initial)
			return nil
		})
	}

	_ = g.Wait() // workers report through the Errors slice

	return result
}

// deriveSeed gives each batch index a distinct, reproducible sweep seed.
// A derived value of 0 would select a random seed, so it maps to a fixed
// non-zero substitute instead.
func deriveSeed(base int64, index int) int64 {
	seed := base + int64(index)
	if seed == 0 {
		return math.MinInt64
	}

	return seed
}

func (bb *BatchRecallBuilder) recallOne(ctx context.Context, w *mat.Dense, index int, initial []float64) (*RecallResult, error) {
	if err := pattern.Validate(initial, bb.net.dim); err != nil {
		return nil, translateError(err)
	}

	if bb.net.resources != nil {
		if err := bb.net.resources.AcquireRecall(ctx); err != nil {
			return nil, err
		}
		defer bb.net.resources.ReleaseRecall()
	}

	cfg := bb.cfg
	if cfg.Seed != 0 {
		cfg.Seed = deriveSeed(cfg.Seed, index)
	}

	state := slices.Clone(initial)

	res, err := engine.New(w, bb.net.pool).Run(ctx, state, cfg)
	if err != nil {
		return nil, translateError(err)
	}

	return &RecallResult{
		State:     res.State,
		Steps:     res.Steps,
		Converged: res.Converged,
		Energy:    res.Energy,
		Trace:     res.Trace,
	}, nil
}
