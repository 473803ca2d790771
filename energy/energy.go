package energy

import (
	"github.com/hupe1980/hopgo/internal/mat"
)

// Energy returns E(s) = -½ sᵀWs + biasᵀs.
//
// A nil bias is treated as the all-zero vector.
//
// SAFETY: assumes len(state) == w.Dim() and, if non-nil,
// len(bias) == w.Dim(). Callers must validate dimensions first.
func Energy(w *mat.Dense, bias, state []float64) float64 {
	var e float64
	for i := 0; i < w.Dim(); i++ {
		e += state[i] * w.RowDot(i, state)
	}
	e *= -0.5

	for i, b := range bias {
		e += b * state[i]
	}

	return e
}

// UnitEnergy returns the energy contribution of unit i:
// -s_i (Σ_j W[i][j] s_j - bias[i]). A positive unit energy means the
// unit is unstable (its next asynchronous update would flip it).
//
// SAFETY: same dimension assumptions as Energy.
func UnitEnergy(w *mat.Dense, bias, state []float64, i int) float64 {
	h := w.RowDot(i, state)
	if bias != nil {
		h -= bias[i]
	}

	return -state[i] * h
}

// AllUnitEnergies fills dst with the energy of every unit and returns it.
// If dst is nil a fresh slice is allocated.
func AllUnitEnergies(w *mat.Dense, bias, state, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, w.Dim())
	}
	for i := range dst {
		dst[i] = UnitEnergy(w, bias, state, i)
	}

	return dst
}

// UnstableUnits counts the units whose energy is strictly positive.
// A state is a fixed point of the asynchronous dynamics iff this is zero.
func UnstableUnits(w *mat.Dense, bias, state []float64) int {
	var n int
	for i := 0; i < w.Dim(); i++ {
		if UnitEnergy(w, bias, state, i) > 0 {
			n++
		}
	}

	return n
}
