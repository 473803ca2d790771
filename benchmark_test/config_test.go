package benchmark_test

import (
	"testing"

	"github.com/hupe1980/hopgo"
)

// ============================================================================
// Benchmark Configuration
// ============================================================================

// Standard dimensions used across benchmarks for consistency.
const (
	dimSmall  = 64   // Fast CI benchmarks
	dimMedium = 512  // Typical workload
	dimLarge  = 2048 // Stress dimension
)

// Standard pattern-set sizes, kept well under the ~0.14N capacity bound so
// benchmarks measure speed, not retrieval failure.
const (
	setSmall  = 4
	setMedium = 16
	setLarge  = 64
)

// Seed for deterministic benchmarks - enables reproducible comparisons.
const benchSeed = 42

// ============================================================================
// Benchmark Helpers
// ============================================================================

// openBenchNetwork creates a network sized for benchmark isolation.
func openBenchNetwork(b *testing.B, dim int, optFns ...hopgo.Option) *hopgo.Network {
	b.Helper()

	net, err := hopgo.New(dim, optFns...)
	if err != nil {
		b.Fatalf("failed to create network: %v", err)
	}
	b.Cleanup(net.Close)

	return net
}
