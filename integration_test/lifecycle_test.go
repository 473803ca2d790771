package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hopgo"
	"github.com/hupe1980/hopgo/blobstore"
	"github.com/hupe1980/hopgo/persistence"
	"github.com/hupe1980/hopgo/testutil"
)

func TestE2E_TrainSnapshotRestore(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	store, err := blobstore.NewLocalStore(dir)
	require.NoError(t, err)

	rng := testutil.NewRNG(1)
	patterns := rng.BipolarSet(3, 64)

	// 1. Train and save
	net, err := hopgo.New(64)
	require.NoError(t, err)

	require.NoError(t, net.Train(ctx, patterns...))
	require.NoError(t, net.SaveSnapshot(ctx, store, "weights.hop",
		persistence.WithCompression(persistence.CompressionZstd)))
	net.Close()

	// 2. Restore and verify recall
	restored, err := hopgo.NewFromSnapshot(ctx, store, "weights.hop")
	require.NoError(t, err)
	defer restored.Close()

	require.Equal(t, 64, restored.Dimension())

	for _, p := range patterns {
		result, err := restored.Recall(rng.Corrupt(p, 4)).Execute(ctx)
		require.NoError(t, err)
		require.True(t, result.Converged)
		require.Equal(t, p, result.State)
	}
}

func TestE2E_RecallQualityUnderNoise(t *testing.T) {
	ctx := context.Background()

	const (
		dim   = 128
		count = 5
	)

	rng := testutil.NewRNG(2)
	patterns := rng.BipolarSet(count, dim)

	net, err := hopgo.New(dim)
	require.NoError(t, err)
	defer net.Close()

	require.NoError(t, net.Train(ctx, patterns...))

	// Well under capacity with 10% noise, every mode should recover
	// every pattern exactly.
	for name, configure := range map[string]func(*hopgo.RecallBuilder) *hopgo.RecallBuilder{
		"Sync":         (*hopgo.RecallBuilder).Sync,
		"Async":        (*hopgo.RecallBuilder).Async,
		"AsyncBlocked": (*hopgo.RecallBuilder).AsyncBlocked,
	} {
		t.Run(name, func(t *testing.T) {
			recalled := make([][]float64, count)
			for i, p := range patterns {
				result, err := configure(net.Recall(rng.Corrupt(p, dim/10))).Execute(ctx)
				require.NoError(t, err)
				require.True(t, result.Converged)

				recalled[i] = result.State
			}

			require.Equal(t, 1.0, testutil.RecallRate(recalled, patterns))
		})
	}
}

func TestE2E_BatchAgainstSequential(t *testing.T) {
	ctx := context.Background()

	rng := testutil.NewRNG(3)
	patterns := rng.BipolarSet(4, 64)

	net, err := hopgo.New(64)
	require.NoError(t, err)
	defer net.Close()

	require.NoError(t, net.Train(ctx, patterns...))

	probes := make([][]float64, len(patterns))
	for i, p := range patterns {
		probes[i] = rng.Corrupt(p, 4)
	}

	// Sequential reference
	want := make([][]float64, len(probes))
	for i, probe := range probes {
		result, err := net.Recall(probe).Execute(ctx)
		require.NoError(t, err)
		want[i] = result.State
	}

	// Batch must agree state for state
	batch := net.BatchRecall(probes).Execute(ctx)
	require.Equal(t, 0, batch.Failed())

	for i := range probes {
		require.Equal(t, want[i], batch.Results[i].State)
	}
}

func TestE2E_RetrainAfterRestore(t *testing.T) {
	ctx := context.Background()

	store := blobstore.NewMemoryStore()

	rng := testutil.NewRNG(4)
	first := rng.Bipolar(32)
	second := rng.Bipolar(32)

	net, err := hopgo.New(32)
	require.NoError(t, err)
	require.NoError(t, net.Train(ctx, first))
	require.NoError(t, net.SaveSnapshot(ctx, store, "weights.hop"))
	net.Close()

	// Snapshots carry weights only; retraining starts from an empty
	// pattern set.
	restored, err := hopgo.NewFromSnapshot(ctx, store, "weights.hop")
	require.NoError(t, err)
	defer restored.Close()

	require.Equal(t, 0, restored.PatternCount())
	require.NoError(t, restored.Train(ctx, second))

	result, err := restored.Recall(second).Execute(ctx)
	require.NoError(t, err)
	require.True(t, result.Converged)
	require.Equal(t, 1, result.Steps)
}
