package pattern

import (
	"math/rand"
)

// Generator produces uniformly random bipolar patterns of a fixed length.
//
// A Generator is deterministic for a given seed, which it exposes via
// Seed so experiments can be repeated. It is not safe for concurrent use;
// create one generator per goroutine.
type Generator struct {
	dim  int
	seed int64
	rng  *rand.Rand
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSeed fixes the generator seed. A zero seed (the default) selects a
// random seed, which remains readable via Seed afterwards.
func WithSeed(seed int64) GeneratorOption {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator for patterns of length dim.
// It panics if dim <= 0; dimension validation belongs to the caller.
func NewGenerator(dim int, optFns ...GeneratorOption) *Generator {
	if dim <= 0 {
		panic("pattern: non-positive generator dimension")
	}

	g := &Generator{dim: dim}
	for _, fn := range optFns {
		if fn != nil {
			fn(g)
		}
	}

	if g.seed == 0 {
		g.seed = rand.Int63()
	}
	g.rng = rand.New(rand.NewSource(g.seed)) //nolint:gosec // reproducibility over crypto strength

	return g
}

// Seed returns the seed driving this generator, for repetition.
func (g *Generator) Seed() int64 { return g.seed }

// Dim returns the length of generated patterns.
func (g *Generator) Dim() int { return g.dim }

// Next returns a fresh uniformly random bipolar pattern.
func (g *Generator) Next() Pattern {
	p := make(Pattern, g.dim)
	for i := range p {
		if g.rng.Intn(2) == 0 {
			p[i] = -1
		} else {
			p[i] = 1
		}
	}

	return p
}

// Collection returns n fresh patterns.
func (g *Generator) Collection(n int) []Pattern {
	out := make([]Pattern, n)
	for i := range out {
		out[i] = g.Next()
	}

	return out
}

// Corrupt returns a copy of p with flips distinct positions negated.
// Useful for probing recall from noisy inputs. flips is clamped to the
// pattern length.
func (g *Generator) Corrupt(p Pattern, flips int) Pattern {
	out := p.Clone()
	if flips <= 0 {
		return out
	}
	if flips > len(out) {
		flips = len(out)
	}

	for _, i := range g.rng.Perm(len(out))[:flips] {
		out[i] = -out[i]
	}

	return out
}
