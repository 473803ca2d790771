// Package hopgo provides an embedded Hopfield associative memory.
//
// This file implements the core Network type: pattern storage, Hebbian
// training and the energy function. Recall lives in recall.go, batch
// recall in batch.go and snapshot persistence in snapshot.go.
package hopgo

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hupe1980/hopgo/energy"
	"github.com/hupe1980/hopgo/engine"
	"github.com/hupe1980/hopgo/hebbian"
	"github.com/hupe1980/hopgo/internal/mat"
	"github.com/hupe1980/hopgo/pattern"
	"github.com/hupe1980/hopgo/resource"
)

// Network is a Hopfield associative memory over bipolar states of a fixed
// dimension.
//
// The network is safe for concurrent use. Training swaps in a fresh weight
// matrix atomically; recalls running at the time keep the matrix they
// started with.
type Network struct {
	dim       int
	normalize bool

	store   *pattern.Store
	weights atomic.Pointer[mat.Dense]

	pool      *engine.WorkerPool
	resources *resource.Controller

	logger  *Logger
	metrics MetricsCollector
}

// New creates a Network for states of the given dimension.
func New(dimension int, optFns ...Option) (*Network, error) {
	if dimension <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dimension}
	}

	o := applyOptions(optFns)

	return &Network{
		dim:       dimension,
		normalize: o.normalize,
		store:     pattern.NewStore(dimension),
		pool:      engine.NewWorkerPool(o.workers),
		resources: o.resources,
		logger:    o.logger.WithDimension(dimension),
		metrics:   o.metricsCollector,
	}, nil
}

// Dimension returns the state dimension of the network.
func (n *Network) Dimension() int { return n.dim }

// Trained reports whether a weight matrix exists.
func (n *Network) Trained() bool { return n.weights.Load() != nil }

// PatternCount returns the number of stored patterns.
func (n *Network) PatternCount() int { return n.store.Len() }

// AddPattern validates values and appends a copy to the stored pattern
// set. It does not retrain; call Train afterwards to rebuild the weights.
func (n *Network) AddPattern(values []float64) error {
	return translateError(n.store.Add(values))
}

// ClearPatterns removes all stored patterns. The current weight matrix,
// if any, stays in place until the next Train.
func (n *Network) ClearPatterns() {
	n.store.Clear()
}

// Train appends the given patterns (if any) to the stored set and rebuilds
// the weight matrix from the full set with the Hebbian rule. The new matrix
// is published atomically; concurrent recalls finish against the old one.
//
// Training with an empty stored set and no arguments returns
// ErrEmptyPatternSet.
func (n *Network) Train(ctx context.Context, patterns ...[]float64) error {
	start := time.Now()

	err := n.train(ctx, patterns)

	n.metrics.RecordTrain(n.store.Len(), time.Since(start), err)
	n.logger.LogTrain(ctx, n.store.Len(), err)

	return err
}

func (n *Network) train(ctx context.Context, patterns [][]float64) error {
	for _, p := range patterns {
		if err := n.store.Add(p); err != nil {
			return translateError(err)
		}
	}

	set := n.store.Snapshot()

	var buildOpts []hebbian.Option
	if n.normalize {
		buildOpts = append(buildOpts, hebbian.WithNormalization(true))
	}

	w, err := hebbian.Build(ctx, set, n.pool, buildOpts...)
	if err != nil {
		return translateError(err)
	}

	n.weights.Store(w)

	return nil
}

// Energy computes the Hopfield energy of state under the trained weights:
//
//	E(s) = -1/2 * s^T W s
//
// Lower is more stable; stored patterns sit in local minima. Returns
// ErrNotTrained before the first successful Train.
func (n *Network) Energy(state []float64) (float64, error) {
	w := n.weights.Load()
	if w == nil {
		return 0, ErrNotTrained
	}

	if len(state) != n.dim {
		return 0, &ErrDimensionMismatch{Expected: n.dim, Actual: len(state)}
	}

	return energy.Energy(w, nil, state), nil
}

// String returns a human-readable summary of the network.
func (n *Network) String() string {
	return fmt.Sprintf("HopfieldNetwork(dimension=%d, patterns=%d, trained=%t, workers=%d)",
		n.dim, n.store.Len(), n.Trained(), n.pool.NumWorkers())
}

// Close releases the worker pool. The network must not be used afterwards.
func (n *Network) Close() {
	n.pool.Close()
}
