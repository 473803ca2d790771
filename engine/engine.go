package engine

import (
	"context"
	"math/rand"
	"slices"

	"github.com/hupe1980/hopgo/energy"
	"github.com/hupe1980/hopgo/internal/mat"
	"github.com/hupe1980/hopgo/pattern"
)

// Engine drives one relaxation run against an immutable weight matrix.
// The matrix is read-only for the lifetime of the run; all mutation
// happens on the caller-owned state vector.
type Engine struct {
	w    *mat.Dense
	pool *WorkerPool
}

// New creates an engine over w using pool for the parallel phases.
func New(w *mat.Dense, pool *WorkerPool) *Engine {
	return &Engine{w: w, pool: pool}
}

// Result is the terminal outcome of a relaxation run.
type Result struct {
	// State is the final state. It aliases the slice passed to Run.
	State []float64

	// Steps counts completed update steps, including the one that
	// confirmed the fixed point. Recalling a stored pattern unchanged
	// therefore reports Steps == 1.
	Steps int

	// Converged is true when a fixed point was reached within the
	// iteration budget, false when the budget ran out first.
	Converged bool

	// Energy is the energy of the final state.
	Energy float64

	// Trace holds per-step diagnostics when Config.Trace is set.
	Trace []StepTrace
}

// Run iterates state under cfg until a terminal phase and returns the
// result. The state slice is mutated in place and must be exclusively
// owned by this run. Reaching the iteration cap is reported via
// Result.Converged, not as an error.
//
// ctx is checked between steps; cancellation aborts the run early.
func (e *Engine) Run(ctx context.Context, state []float64, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	n := e.w.Dim()
	if len(state) != n {
		return nil, &pattern.ErrDimensionMismatch{Expected: n, Actual: len(state)}
	}
	if cfg.Bias != nil && len(cfg.Bias) != n {
		return nil, &pattern.ErrDimensionMismatch{Expected: n, Actual: len(cfg.Bias)}
	}

	var rng *rand.Rand
	if cfg.Mode == ModeAsynchronous && cfg.SweepOrder == SweepRandomPerSweep {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Int63()
		}
		rng = rand.New(rand.NewSource(seed)) //nolint:gosec // reproducibility over crypto strength
	}

	var (
		scratch, snapshot []float64
		order             []int
	)
	switch cfg.Mode {
	case ModeSynchronous:
		scratch = make([]float64, n)
	case ModeAsyncBlocked:
		scratch = make([]float64, n)
		snapshot = make([]float64, n)
	case ModeAsynchronous:
		order = make([]int, n)
		for i := range order {
			order[i] = i
		}
	}

	maxIter := cfg.maxIterations()

	var trace []StepTrace

	phase := PhaseRunning
	steps := 0
	for phase == PhaseRunning {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			fixed   bool
			flipped []uint32
			err     error
		)
		switch cfg.Mode {
		case ModeSynchronous:
			fixed, flipped, err = e.syncStep(ctx, state, scratch, cfg.Bias)
		case ModeAsynchronous:
			fixed, flipped = e.asyncSweep(state, cfg.Bias, order, rng)
		case ModeAsyncBlocked:
			fixed, flipped, err = e.blockedSweep(ctx, state, scratch, snapshot, cfg.Bias)
		}
		if err != nil {
			return nil, err
		}

		steps++
		if cfg.Trace {
			trace = append(trace, StepTrace{
				Step:    steps,
				Energy:  energy.Energy(e.w, cfg.Bias, state),
				Flipped: newFlipBitmap(flipped),
			})
		}

		switch {
		case fixed:
			phase = PhaseConverged
		case steps >= maxIter:
			phase = PhaseIterationLimit
		}
	}

	return &Result{
		State:     state,
		Steps:     steps,
		Converged: phase == PhaseConverged,
		Energy:    energy.Energy(e.w, cfg.Bias, state),
		Trace:     trace,
	}, nil
}

// nextValue applies the sign rule with the fixed tie-break: a zero local
// field leaves the unit unchanged, so ties can never oscillate.
func nextValue(h, cur float64) float64 {
	switch {
	case h > 0:
		return 1
	case h < 0:
		return -1
	default:
		return cur
	}
}

// syncStep computes one synchronous step: every neuron reads only the
// state as it was at the start of the step. Neurons are partitioned
// across the pool; Map's completion is the barrier before the merged
// state becomes visible. Per-chunk flip lists merge in chunk order so
// the outcome is identical for any worker count.
func (e *Engine) syncStep(ctx context.Context, state, scratch, bias []float64) (bool, []uint32, error) {
	chunkFlips := make([][]uint32, e.pool.NumWorkers())

	err := e.pool.Map(ctx, e.w.Dim(), func(chunk, start, end int) {
		var fl []uint32
		for i := start; i < end; i++ {
			h := e.w.RowDot(i, state)
			if bias != nil {
				h -= bias[i]
			}
			v := nextValue(h, state[i])
			scratch[i] = v
			if v != state[i] {
				fl = append(fl, uint32(i))
			}
		}
		chunkFlips[chunk] = fl
	})
	if err != nil {
		return false, nil, err
	}

	fixed := Converged(state, scratch)
	copy(state, scratch)

	return fixed, mergeFlips(chunkFlips), nil
}

// asyncSweep performs one classical asynchronous sweep: N single-neuron
// updates in order, each immediately visible to the next. Inherently
// sequential, so it runs on the calling goroutine.
func (e *Engine) asyncSweep(state, bias []float64, order []int, rng *rand.Rand) (bool, []uint32) {
	if rng != nil {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	var flipped []uint32
	for _, i := range order {
		h := e.w.RowDot(i, state)
		if bias != nil {
			h -= bias[i]
		}
		v := nextValue(h, state[i])
		if v != state[i] {
			state[i] = v
			flipped = append(flipped, uint32(i))
		}
	}

	return len(flipped) == 0, flipped
}

// blockedSweep performs one relaxed asynchronous sweep: contiguous neuron
// blocks update in parallel, each block sequentially against a private
// copy of the sweep-start snapshot. Units within a block are visited in
// index order. Cross-block staleness is bounded by one sweep; the energy
// guarantee holds per block.
func (e *Engine) blockedSweep(ctx context.Context, state, scratch, snapshot, bias []float64) (bool, []uint32, error) {
	copy(snapshot, state)

	chunkFlips := make([][]uint32, e.pool.NumWorkers())

	err := e.pool.Map(ctx, e.w.Dim(), func(chunk, start, end int) {
		local := slices.Clone(snapshot)

		var fl []uint32
		for i := start; i < end; i++ {
			h := e.w.RowDot(i, local)
			if bias != nil {
				h -= bias[i]
			}
			v := nextValue(h, local[i])
			if v != local[i] {
				fl = append(fl, uint32(i))
			}
			local[i] = v
			scratch[i] = v
		}
		chunkFlips[chunk] = fl
	})
	if err != nil {
		return false, nil, err
	}

	fixed := Converged(state, scratch)
	copy(state, scratch)

	return fixed, mergeFlips(chunkFlips), nil
}

func mergeFlips(chunks [][]uint32) []uint32 {
	var out []uint32
	for _, fl := range chunks {
		out = append(out, fl...)
	}

	return out
}
