// Package hebbian builds Hopfield weight matrices from pattern sets via
// the outer-product learning rule: W = Σ_p (p ⊗ pᵀ) with a zeroed
// diagonal. The sum is a commutative reduction over patterns, so it is
// partitioned across a worker pool and merged deterministically.
package hebbian

import (
	"context"
	"errors"

	"github.com/hupe1980/hopgo/engine"
	"github.com/hupe1980/hopgo/internal/mat"
	"github.com/hupe1980/hopgo/pattern"
)

// ErrEmptyPatternSet is returned when Build is called without patterns.
var ErrEmptyPatternSet = errors.New("empty pattern set")

type options struct {
	normalize bool
}

// Option configures the build.
type Option func(*options)

// WithNormalization divides the summed matrix by the network dimension,
// for numerical-scale parity with the literature. The sign-based update
// rule is unaffected either way; the choice only rescales energies, and
// it is applied identically wherever the built matrix is consumed.
func WithNormalization(on bool) Option {
	return func(o *options) {
		o.normalize = on
	}
}

// Build computes the weight matrix for the given pattern set. The result
// is symmetric with a zero diagonal.
//
// Patterns are partitioned across the pool; each chunk accumulates a
// partial sum merged in chunk-index order, so floating-point accumulation
// is reproducible for a fixed pattern set and worker count.
func Build(ctx context.Context, patterns []pattern.Pattern, pool *engine.WorkerPool, optFns ...Option) (*mat.Dense, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyPatternSet
	}

	var o options
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	dim := len(patterns[0])
	for _, p := range patterns {
		if len(p) != dim {
			return nil, &pattern.ErrDimensionMismatch{Expected: dim, Actual: len(p)}
		}
	}

	partials := make([]*mat.Dense, pool.NumWorkers())
	err := pool.Map(ctx, len(patterns), func(chunk, start, end int) {
		acc := mat.NewDense(dim)
		for _, p := range patterns[start:end] {
			acc.AddOuter(p)
		}
		partials[chunk] = acc
	})
	if err != nil {
		return nil, err
	}

	w := mat.NewDense(dim)
	for _, partial := range partials {
		if partial != nil {
			w.Add(partial)
		}
	}

	w.ZeroDiagonal()
	if o.normalize {
		w.Scale(1 / float64(dim))
	}

	return w, nil
}
