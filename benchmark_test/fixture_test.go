package benchmark_test

import (
	"fmt"
	"sync"

	"github.com/hupe1980/hopgo/testutil"
)

// fixture is a reusable trained-set scenario: stored patterns plus noisy
// probes derived from them.
type fixture struct {
	dim      int
	patterns [][]float64
	probes   [][]float64
}

var (
	fixtureMu    sync.Mutex
	fixtureCache = map[string]*fixture{}
)

// loadFixture returns a cached deterministic fixture for (dim, count).
// Probes carry dim/16 flipped units, inside the basin of attraction for the
// benchmark set sizes.
func loadFixture(dim, count int) *fixture {
	fixtureMu.Lock()
	defer fixtureMu.Unlock()

	key := fmt.Sprintf("%d/%d", dim, count)
	if f, ok := fixtureCache[key]; ok {
		return f
	}

	rng := testutil.NewRNG(benchSeed)

	f := &fixture{
		dim:      dim,
		patterns: rng.BipolarSet(count, dim),
	}

	flips := dim / 16
	f.probes = make([][]float64, count)
	for i, p := range f.patterns {
		f.probes[i] = rng.Corrupt(p, flips)
	}

	fixtureCache[key] = f

	return f
}
