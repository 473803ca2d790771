// Package hopgo provides an embedded Hopfield associative memory.
//
// This file implements weight-matrix snapshots: saving a trained network to
// a blob store and restoring it later. The binary format lives in the
// persistence package; storage backends live in the blobstore package.
package hopgo

import (
	"bytes"
	"context"
	"time"

	"github.com/hupe1980/hopgo/blobstore"
	"github.com/hupe1980/hopgo/persistence"
)

// NewFromSnapshot creates a Network from a stored snapshot. The dimension
// is taken from the snapshot; options apply as in New.
func NewFromSnapshot(ctx context.Context, store blobstore.Store, name string, optFns ...Option) (*Network, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	snap, err := persistence.Read(bytes.NewReader(data))
	if err != nil {
		return nil, translateError(err)
	}

	net, err := New(snap.Weights.Dim(), optFns...)
	if err != nil {
		return nil, err
	}

	net.weights.Store(snap.Weights)
	net.logger.LogSnapshot(ctx, "load", name, nil)

	return net, nil
}

// SaveSnapshot serializes the trained weight matrix and writes it to store
// under name. Stored patterns are not part of a snapshot; a restored
// network can recall but must re-add patterns before retraining.
//
// Returns ErrNotTrained before the first successful Train.
func (n *Network) SaveSnapshot(ctx context.Context, store blobstore.Store, name string, optFns ...persistence.WriteOption) error {
	start := time.Now()

	err := n.saveSnapshot(ctx, store, name, optFns)

	n.metrics.RecordSnapshot(time.Since(start), err)
	n.logger.LogSnapshot(ctx, "save", name, err)

	return err
}

func (n *Network) saveSnapshot(ctx context.Context, store blobstore.Store, name string, optFns []persistence.WriteOption) error {
	w := n.weights.Load()
	if w == nil {
		return ErrNotTrained
	}

	var buf bytes.Buffer
	if err := persistence.Write(&buf, &persistence.Snapshot{Weights: w}, optFns...); err != nil {
		return err
	}

	if n.resources != nil {
		if err := n.resources.AcquireIO(ctx, buf.Len()); err != nil {
			return err
		}
	}

	return store.Put(ctx, name, buf.Bytes())
}

// LoadSnapshot reads a snapshot from store and publishes its weight matrix
// as the network's current weights. The snapshot dimension must match the
// network dimension.
//
// Corrupt or truncated snapshots are reported via ErrCorruptData.
func (n *Network) LoadSnapshot(ctx context.Context, store blobstore.Store, name string) error {
	start := time.Now()

	err := n.loadSnapshot(ctx, store, name)

	n.metrics.RecordSnapshot(time.Since(start), err)
	n.logger.LogSnapshot(ctx, "load", name, err)

	return err
}

func (n *Network) loadSnapshot(ctx context.Context, store blobstore.Store, name string) error {
	data, err := store.Get(ctx, name)
	if err != nil {
		return err
	}

	if n.resources != nil {
		if err := n.resources.AcquireIO(ctx, len(data)); err != nil {
			return err
		}
	}

	snap, err := persistence.Read(bytes.NewReader(data))
	if err != nil {
		return translateError(err)
	}

	if dim := snap.Weights.Dim(); dim != n.dim {
		return &ErrDimensionMismatch{Expected: n.dim, Actual: dim}
	}

	n.weights.Store(snap.Weights)

	return nil
}
