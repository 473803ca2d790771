// Package testutil provides testing utilities for hopgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random bipolar patterns, corrupting
// them with controlled noise, and measuring retrieval quality.
//
// # Random Pattern Generation
//
//	rng := testutil.NewRNG(seed)
//	p := rng.Bipolar(128)          // uniform random +1/-1 pattern
//	set := rng.BipolarSet(5, 128)  // five independent patterns
//
// # Controlled Corruption
//
//	noisy := rng.Corrupt(p, 12)    // flip 12 distinct units
//
// # Retrieval Quality
//
//	overlap := testutil.Overlap(recalled, stored)
//	rate := testutil.RecallRate(recalled, stored)
package testutil
