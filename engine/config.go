package engine

import "fmt"

// Mode selects the update dynamics applied at each step.
type Mode int

const (
	// ModeSynchronous recomputes every neuron simultaneously from the
	// previous step's full state. Deterministic for a fixed input.
	ModeSynchronous Mode = iota

	// ModeAsynchronous updates neurons one at a time, each update
	// immediately visible within the same sweep. This is the classical
	// dynamics with the per-neuron energy-descent guarantee.
	ModeAsynchronous

	// ModeAsyncBlocked is a relaxed asynchronous variant: neurons are
	// partitioned into contiguous blocks that update in parallel from a
	// snapshot taken at the start of the sweep. Energy non-increase is
	// guaranteed per block, not per neuron.
	ModeAsyncBlocked
)

func (m Mode) String() string {
	switch m {
	case ModeSynchronous:
		return "synchronous"
	case ModeAsynchronous:
		return "asynchronous"
	case ModeAsyncBlocked:
		return "async-blocked"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// SweepOrder selects the unit visiting order of asynchronous sweeps.
type SweepOrder int

const (
	// SweepSequential visits units 0..N-1 in index order every sweep.
	SweepSequential SweepOrder = iota

	// SweepRandomPerSweep visits units in a uniformly random permutation
	// regenerated each sweep, driven by the configured seed.
	SweepRandomPerSweep
)

func (o SweepOrder) String() string {
	switch o {
	case SweepSequential:
		return "sequential"
	case SweepRandomPerSweep:
		return "random-per-sweep"
	default:
		return fmt.Sprintf("Unknown(%d)", int(o))
	}
}

// Phase is the state of the update state machine.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseConverged
	PhaseIterationLimit
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseConverged:
		return "converged"
	case PhaseIterationLimit:
		return "iteration-limit"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// DefaultMaxIterations is the iteration budget applied when a config
// leaves MaxIterations unset.
const DefaultMaxIterations = 100

// Config parameterizes a single relaxation run.
type Config struct {
	// Mode selects the update dynamics. Default: ModeSynchronous.
	Mode Mode

	// SweepOrder applies to the asynchronous modes. Default: SweepSequential.
	SweepOrder SweepOrder

	// MaxIterations caps the number of update steps. Values <= 0 select
	// DefaultMaxIterations. Reaching the cap is a normal terminal outcome
	// reported via Converged=false, not an error.
	MaxIterations int

	// Bias holds per-neuron firing thresholds. Nil means all-zero.
	// Must have length N when set.
	Bias []float64

	// Seed drives the random sweep permutations. Zero selects a random
	// seed. Irrelevant outside SweepRandomPerSweep.
	Seed int64

	// Trace records per-step energies and flipped-unit bitmaps into the
	// result. Off by default; tracing allocates per step.
	Trace bool
}

func (c Config) maxIterations() int {
	if c.MaxIterations <= 0 {
		return DefaultMaxIterations
	}

	return c.MaxIterations
}

func (c Config) validate() error {
	switch c.Mode {
	case ModeSynchronous, ModeAsynchronous, ModeAsyncBlocked:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(c.Mode))
	}

	switch c.SweepOrder {
	case SweepSequential, SweepRandomPerSweep:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidSweepOrder, int(c.SweepOrder))
	}

	return nil
}
