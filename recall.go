// Package hopgo provides an embedded Hopfield associative memory.
//
// This file implements the fluent recall API for relaxing states against a
// trained network.
package hopgo

import (
	"context"
	"slices"
	"time"

	"github.com/hupe1980/hopgo/engine"
	"github.com/hupe1980/hopgo/pattern"
)

// RecallResult is the outcome of a single recall.
type RecallResult struct {
	// State is the final state after relaxation.
	State []float64

	// Steps counts completed update steps, including the step that
	// confirmed the fixed point. Recalling a stored pattern unchanged
	// reports Steps == 1.
	Steps int

	// Converged is true when a fixed point was reached within the
	// iteration budget.
	Converged bool

	// Energy is the energy of the final state.
	Energy float64

	// Trace holds per-step diagnostics when tracing was enabled.
	Trace []engine.StepTrace
}

// Recall creates a new fluent recall builder for the given initial state.
// The state is copied; the caller's slice is never mutated.
//
// Example:
//
//	result, err := net.Recall(noisy).
//	    Async().
//	    RandomPerSweep().
//	    Seed(42).
//	    MaxIterations(200).
//	    Execute(ctx)
func (n *Network) Recall(initial []float64) *RecallBuilder {
	return &RecallBuilder{
		net:     n,
		initial: initial,
	}
}

// RecallBuilder is a fluent builder for constructing recall runs.
type RecallBuilder struct {
	net     *Network
	initial []float64
	cfg     engine.Config
}

// Sync selects synchronous dynamics: every neuron updates simultaneously
// from the previous step's state. This is the default.
func (rb *RecallBuilder) Sync() *RecallBuilder {
	rb.cfg.Mode = engine.ModeSynchronous
	return rb
}

// Async selects asynchronous dynamics: neurons update one at a time, each
// update immediately visible. Energy never increases between steps.
func (rb *RecallBuilder) Async() *RecallBuilder {
	rb.cfg.Mode = engine.ModeAsynchronous
	return rb
}

// AsyncBlocked selects block-parallel asynchronous dynamics: contiguous
// neuron blocks update in parallel from a per-sweep snapshot. Faster than
// Async on large networks; energy non-increase holds per block.
func (rb *RecallBuilder) AsyncBlocked() *RecallBuilder {
	rb.cfg.Mode = engine.ModeAsyncBlocked
	return rb
}

// Sequential visits units in index order every asynchronous sweep.
// This is the default.
func (rb *RecallBuilder) Sequential() *RecallBuilder {
	rb.cfg.SweepOrder = engine.SweepSequential
	return rb
}

// RandomPerSweep visits units in a fresh random permutation each
// asynchronous sweep, driven by Seed.
func (rb *RecallBuilder) RandomPerSweep() *RecallBuilder {
	rb.cfg.SweepOrder = engine.SweepRandomPerSweep
	return rb
}

// MaxIterations caps the number of update steps. Reaching the cap is
// reported via RecallResult.Converged, not as an error.
// Defaults to engine.DefaultMaxIterations.
func (rb *RecallBuilder) MaxIterations(n int) *RecallBuilder {
	rb.cfg.MaxIterations = n
	return rb
}

// Bias sets per-neuron firing thresholds. Must have the network dimension.
func (rb *RecallBuilder) Bias(bias []float64) *RecallBuilder {
	rb.cfg.Bias = bias
	return rb
}

// Seed fixes the random sweep permutations for reproducible runs.
// Zero selects a random seed.
func (rb *RecallBuilder) Seed(seed int64) *RecallBuilder {
	rb.cfg.Seed = seed
	return rb
}

// Trace records per-step energies and flipped-unit bitmaps into the
// result. Tracing allocates per step; leave off in hot paths.
func (rb *RecallBuilder) Trace() *RecallBuilder {
	rb.cfg.Trace = true
	return rb
}

// Execute runs the recall and returns the result.
func (rb *RecallBuilder) Execute(ctx context.Context) (*RecallResult, error) {
	start := time.Now()

	result, err := rb.execute(ctx)

	steps, converged := 0, false
	if result != nil {
		steps, converged = result.Steps, result.Converged
	}
	rb.net.metrics.RecordRecall(steps, converged, time.Since(start), err)
	rb.net.logger.LogRecall(ctx, rb.cfg.Mode.String(), steps, converged, err)

	return result, err
}

func (rb *RecallBuilder) execute(ctx context.Context) (*RecallResult, error) {
	w := rb.net.weights.Load()
	if w == nil {
		return nil, ErrNotTrained
	}

	if err := pattern.Validate(rb.initial, rb.net.dim); err != nil {
		return nil, translateError(err)
	}

	if rb.net.resources != nil {
		if err := rb.net.resources.AcquireRecall(ctx); err != nil {
			return nil, err
		}
		defer rb.net.resources.ReleaseRecall()
	}

	state := slices.Clone(rb.initial)

	res, err := engine.New(w, rb.net.pool).Run(ctx, state, rb.cfg)
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
