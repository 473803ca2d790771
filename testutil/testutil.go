package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic fixtures
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Bipolar returns a uniform random bipolar pattern of the given dimension.
func (r *RNG) Bipolar(dim int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := make([]float64, dim)
	for i := range p {
		if r.rand.Intn(2) == 0 {
			p[i] = 1
		} else {
			p[i] = -1
		}
	}

	return p
}

// BipolarSet returns n independent random bipolar patterns.
func (r *RNG) BipolarSet(n, dim int) [][]float64 {
	set := make([][]float64, n)
	for i := range set {
		set[i] = r.Bipolar(dim)
	}

	return set
}

// Corrupt returns a copy of p with flips distinct units negated.
// flips is clamped to len(p).
func (r *RNG) Corrupt(p []float64, flips int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if flips > len(p) {
		flips = len(p)
	}

	out := make([]float64, len(p))
	copy(out, p)

	for _, i := range r.rand.Perm(len(p))[:flips] {
		out[i] = -out[i]
	}

	return out
}

// Overlap returns the fraction of units on which a and b agree, in [0, 1].
// The slices must have equal length.
func Overlap(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}

	matches := 0
	for i := range a {
		if a[i] == b[i] {
			matches++
		}
	}

	return float64(matches) / float64(len(a))
}

// RecallRate returns the fraction of recalled states that exactly match
// their stored counterpart. The slices are index-aligned.
func RecallRate(recalled, stored [][]float64) float64 {
	if len(recalled) == 0 {
		return 0
	}

	exact := 0
	for i := range recalled {
		if Overlap(recalled[i], stored[i]) == 1 {
			exact++
		}
	}

	return float64(exact) / float64(len(recalled))
}
