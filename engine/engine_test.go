package engine

import (
	"context"
	"testing"

	"github.com/hupe1980/hopgo/internal/mat"
	"github.com/hupe1980/hopgo/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hebb(t *testing.T, dim int, patterns ...[]float64) *mat.Dense {
	t.Helper()

	w := mat.NewDense(dim)
	for _, p := range patterns {
		require.Len(t, p, dim)
		w.AddOuter(p)
	}
	w.ZeroDiagonal()

	return w
}

func newTestEngine(t *testing.T, w *mat.Dense, workers int) *Engine {
	t.Helper()

	pool := NewWorkerPool(workers)
	t.Cleanup(pool.Close)

	return New(w, pool)
}

func TestRunSynchronous(t *testing.T) {
	stored := []float64{1, -1, 1, -1}
	w := hebb(t, 4, stored)

	t.Run("ExactRecall", func(t *testing.T) {
		e := newTestEngine(t, w, 2)

		res, err := e.Run(context.Background(), []float64{1, -1, 1, -1}, Config{
			Mode:          ModeSynchronous,
			MaxIterations: 10,
		})
		require.NoError(t, err)

		assert.True(t, res.Converged)
		assert.Equal(t, 1, res.Steps)
		assert.Equal(t, stored, res.State)
		assert.Equal(t, -6.0, res.Energy)
	})

	t.Run("NoisyRecall", func(t *testing.T) {
		e := newTestEngine(t, w, 2)

		res, err := e.Run(context.Background(), []float64{-1, -1, 1, -1}, Config{
			Mode:          ModeSynchronous,
			MaxIterations: 10,
		})
		require.NoError(t, err)

		assert.True(t, res.Converged)
		assert.Equal(t, stored, res.State)
	})

	t.Run("Determinism", func(t *testing.T) {
		e := newTestEngine(t, w, 3)

		initial := []float64{-1, -1, 1, -1}
		run := func() *Result {
			state := append([]float64(nil), initial...)
			res, err := e.Run(context.Background(), state, Config{Mode: ModeSynchronous})
			require.NoError(t, err)
			return res
		}

		a, b := run(), run()
		assert.Equal(t, a.State, b.State)
		assert.Equal(t, a.Steps, b.Steps)
		assert.Equal(t, a.Energy, b.Energy)
	})

	t.Run("WorkerCountInvariance", func(t *testing.T) {
		initial := []float64{-1, 1, 1, -1}

		var states [][]float64
		for _, workers := range []int{1, 2, 4, 8} {
			e := newTestEngine(t, w, workers)
			state := append([]float64(nil), initial...)
			res, err := e.Run(context.Background(), state, Config{Mode: ModeSynchronous})
			require.NoError(t, err)
			states = append(states, res.State)
		}
		for _, s := range states[1:] {
			assert.Equal(t, states[0], s)
		}
	})

	t.Run("IterationLimitIsNotAnError", func(t *testing.T) {
		// Negative coupling drives a two-cycle under synchronous
		// updates: [1,1] -> [-1,-1] -> [1,1] -> ...
		osc := mat.NewDense(2)
		osc.Set(0, 1, -1)
		osc.Set(1, 0, -1)

		e := newTestEngine(t, osc, 1)

		res, err := e.Run(context.Background(), []float64{1, 1}, Config{
			Mode:          ModeSynchronous,
			MaxIterations: 5,
		})
		require.NoError(t, err)

		assert.False(t, res.Converged)
		assert.Equal(t, 5, res.Steps)
	})
}

func TestRunAsynchronous(t *testing.T) {
	stored := []float64{1, -1, 1, -1}
	w := hebb(t, 4, stored)

	t.Run("ExactRecall", func(t *testing.T) {
		e := newTestEngine(t, w, 2)

		res, err := e.Run(context.Background(), []float64{1, -1, 1, -1}, Config{
			Mode: ModeAsynchronous,
		})
		require.NoError(t, err)

		assert.True(t, res.Converged)
		assert.Equal(t, 1, res.Steps)
		assert.Equal(t, stored, res.State)
	})

	t.Run("EnergyIsNonIncreasing", func(t *testing.T) {
		a := pattern.NewGenerator(24, pattern.WithSeed(3))
		patterns := a.Collection(3)
		w := mat.NewDense(24)
		for _, p := range patterns {
			w.AddOuter(p)
		}
		w.ZeroDiagonal()

		e := newTestEngine(t, w, 2)

		res, err := e.Run(context.Background(), a.Next(), Config{
			Mode:  ModeAsynchronous,
			Trace: true,
		})
		require.NoError(t, err)
		require.NotEmpty(t, res.Trace)

		prev := res.Trace[0].Energy
		for _, st := range res.Trace[1:] {
			assert.LessOrEqual(t, st.Energy, prev)
			prev = st.Energy
		}
	})

	t.Run("SeededRandomSweepReproducibility", func(t *testing.T) {
		g := pattern.NewGenerator(16, pattern.WithSeed(11))
		patterns := g.Collection(2)
		w := mat.NewDense(16)
		for _, p := range patterns {
			w.AddOuter(p)
		}
		w.ZeroDiagonal()

		e := newTestEngine(t, w, 2)

		initial := g.Next()
		run := func() *Result {
			state := append([]float64(nil), initial...)
			res, err := e.Run(context.Background(), state, Config{
				Mode:       ModeAsynchronous,
				SweepOrder: SweepRandomPerSweep,
				Seed:       99,
				Trace:      true,
			})
			require.NoError(t, err)
			return res
		}

		a, b := run(), run()
		assert.Equal(t, a.State, b.State)
		assert.Equal(t, a.Steps, b.Steps)
		require.Equal(t, len(a.Trace), len(b.Trace))
		for i := range a.Trace {
			assert.Equal(t, a.Trace[i].Energy, b.Trace[i].Energy)
			assert.True(t, a.Trace[i].Flipped.Equals(b.Trace[i].Flipped))
		}
	})
}

func TestRunAsyncBlocked(t *testing.T) {
	stored := []float64{1, -1, 1, -1, 1, -1, 1, -1}
	w := hebb(t, 8, stored)

	e := newTestEngine(t, w, 3)

	res, err := e.Run(context.Background(), []float64{-1, -1, 1, -1, 1, -1, 1, -1}, Config{
		Mode: ModeAsyncBlocked,
	})
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, stored, res.State)
	for _, v := range res.State {
		assert.Contains(t, []float64{1, -1}, v)
	}
}

func TestRunEdgeCases(t *testing.T) {
	t.Run("TieBreakKeepsCurrentValue", func(t *testing.T) {
		// Zero couplings leave every local field at exactly zero.
		w := mat.NewDense(2)
		e := newTestEngine(t, w, 1)

		for _, mode := range []Mode{ModeSynchronous, ModeAsynchronous, ModeAsyncBlocked} {
			res, err := e.Run(context.Background(), []float64{1, -1}, Config{Mode: mode})
			require.NoError(t, err, mode.String())

			assert.True(t, res.Converged, mode.String())
			assert.Equal(t, 1, res.Steps, mode.String())
			assert.Equal(t, []float64{1, -1}, res.State, mode.String())
		}
	})

	t.Run("DimensionOne", func(t *testing.T) {
		w := mat.NewDense(1)
		e := newTestEngine(t, w, 1)

		res, err := e.Run(context.Background(), []float64{-1}, Config{Mode: ModeAsynchronous})
		require.NoError(t, err)

		assert.True(t, res.Converged)
		assert.Equal(t, 1, res.Steps)
	})

	t.Run("BiasShiftsThreshold", func(t *testing.T) {
		// A strong positive threshold on unit 0 forces it negative even
		// though the coupling pulls it positive.
		w := hebb(t, 4, []float64{1, -1, 1, -1})
		e := newTestEngine(t, w, 1)

		res, err := e.Run(context.Background(), []float64{1, -1, 1, -1}, Config{
			Mode: ModeAsynchronous,
			Bias: []float64{10, 0, 0, 0},
		})
		require.NoError(t, err)

		assert.Equal(t, -1.0, res.State[0])
	})

	t.Run("StateDimensionMismatch", func(t *testing.T) {
		e := newTestEngine(t, mat.NewDense(4), 1)

		_, err := e.Run(context.Background(), []float64{1, -1}, Config{})

		var dm *pattern.ErrDimensionMismatch
		require.ErrorAs(t, err, &dm)
		assert.Equal(t, 4, dm.Expected)
	})

	t.Run("BiasDimensionMismatch", func(t *testing.T) {
		e := newTestEngine(t, mat.NewDense(2), 1)

		_, err := e.Run(context.Background(), []float64{1, -1}, Config{Bias: []float64{1}})

		var dm *pattern.ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})

	t.Run("InvalidMode", func(t *testing.T) {
		e := newTestEngine(t, mat.NewDense(2), 1)

		_, err := e.Run(context.Background(), []float64{1, -1}, Config{Mode: Mode(42)})
		assert.ErrorIs(t, err, ErrInvalidMode)
	})

	t.Run("InvalidSweepOrder", func(t *testing.T) {
		e := newTestEngine(t, mat.NewDense(2), 1)

		_, err := e.Run(context.Background(), []float64{1, -1}, Config{SweepOrder: SweepOrder(9)})
		assert.ErrorIs(t, err, ErrInvalidSweepOrder)
	})

	t.Run("ContextCancellation", func(t *testing.T) {
		e := newTestEngine(t, mat.NewDense(2), 1)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := e.Run(ctx, []float64{1, -1}, Config{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestTrace(t *testing.T) {
	stored := []float64{1, -1, 1, -1}
	w := hebb(t, 4, stored)
	e := newTestEngine(t, w, 2)

	res, err := e.Run(context.Background(), []float64{-1, -1, 1, -1}, Config{
		Mode:  ModeSynchronous,
		Trace: true,
	})
	require.NoError(t, err)
	require.Len(t, res.Trace, res.Steps)

	// First step flips exactly the corrupted unit, final step flips none.
	assert.Equal(t, 1, res.Trace[0].FlipCount())
	assert.True(t, res.Trace[0].Flipped.Contains(0))
	assert.Equal(t, 0, res.Trace[len(res.Trace)-1].FlipCount())

	// Last traced energy matches the result energy.
	assert.Equal(t, res.Energy, res.Trace[len(res.Trace)-1].Energy)
}

func TestConverged(t *testing.T) {
	assert.True(t, Converged([]float64{1, -1}, []float64{1, -1}))
	assert.False(t, Converged([]float64{1, -1}, []float64{1, 1}))
}
