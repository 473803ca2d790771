// Package hopgo provides an embedded Hopfield network for Go: a recurrent
// associative memory that stores bipolar patterns in a symmetric weight
// matrix and recalls them from noisy or partial inputs by energy descent.
//
// Features:
//
//   - Hebbian training with a parallel pattern reduction
//   - Synchronous, asynchronous and relaxed block-parallel update dynamics
//   - Sequential or seeded random-per-sweep unit ordering
//   - Per-step energy/flip tracing backed by Roaring bitmaps
//   - Concurrent batch recall with bounded parallelism
//   - Checksummed snapshot persistence (zstd/lz4) to pluggable blob stores
//     (memory, local filesystem, S3, MinIO)
//
// # Quick Start
//
// Create a network, train it and recall a corrupted pattern:
//
//	net, err := hopgo.New(64, hopgo.WithWorkers(4))
//	if err != nil {
//	    panic(err)
//	}
//	defer net.Close()
//
//	if err := net.Train(ctx, patterns...); err != nil {
//	    panic(err)
//	}
//
//	res, err := net.Recall(noisy).
//	    Async().
//	    RandomPerSweep().
//	    Seed(42).
//	    MaxIterations(200).
//	    Execute(ctx)
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(res.Converged, res.Steps, res.Energy)
//
// # Dynamics
//
// Synchronous updates recompute every neuron from the previous step's
// state and are deterministic for a fixed input. Asynchronous updates are
// the classical dynamics whose energy is non-increasing sweep over sweep.
// The block-parallel asynchronous mode trades that per-neuron guarantee
// for parallelism and is selected explicitly via AsyncBlocked.
//
// # Concurrency Contract
//
// Train publishes a freshly built weight matrix atomically: recalls that
// are in flight keep reading the matrix that was current when they
// started. Recall never mutates shared state, so any number of recalls
// may run concurrently with each other and with Train.
package hopgo
