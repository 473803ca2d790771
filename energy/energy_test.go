package energy

import (
	"testing"

	"github.com/hupe1980/hopgo/internal/mat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hebbian matrix for the single pattern [1,-1,1,-1].
func testMatrix(t *testing.T) *mat.Dense {
	t.Helper()

	w := mat.NewDense(4)
	w.AddOuter([]float64{1, -1, 1, -1})
	w.ZeroDiagonal()
	require.True(t, w.IsSymmetric())

	return w
}

func TestEnergy(t *testing.T) {
	w := testMatrix(t)

	t.Run("StoredPatternIsMinimum", func(t *testing.T) {
		stored := []float64{1, -1, 1, -1}
		// sᵀWs = Σ_{i≠j} 1 = 12, so E = -6.
		assert.Equal(t, -6.0, Energy(w, nil, stored))

		flipped := []float64{-1, -1, 1, -1}
		assert.Greater(t, Energy(w, nil, flipped), Energy(w, nil, stored))
	})

	t.Run("BiasTerm", func(t *testing.T) {
		state := []float64{1, -1, 1, -1}
		bias := []float64{1, 0, 0, 0}
		assert.Equal(t, -5.0, Energy(w, bias, state))
	})

	t.Run("PureNoMutation", func(t *testing.T) {
		state := []float64{1, 1, 1, 1}
		before := w.Clone()

		Energy(w, nil, state)
		assert.Equal(t, before.Data(), w.Data())
		assert.Equal(t, []float64{1, 1, 1, 1}, state)
	})
}

func TestUnitEnergy(t *testing.T) {
	w := testMatrix(t)
	stored := []float64{1, -1, 1, -1}

	t.Run("StoredPatternHasNoUnstableUnits", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			assert.Negative(t, UnitEnergy(w, nil, stored, i))
		}
		assert.Equal(t, 0, UnstableUnits(w, nil, stored))
	})

	t.Run("FlippedUnitIsUnstable", func(t *testing.T) {
		noisy := []float64{-1, -1, 1, -1}
		assert.Positive(t, UnitEnergy(w, nil, noisy, 0))
		assert.Equal(t, 1, UnstableUnits(w, nil, noisy))
	})

	t.Run("SumRelation", func(t *testing.T) {
		// With zero bias, Σ_i e_i = -sᵀWs = 2·E(s).
		state := []float64{1, 1, -1, 1}
		var sum float64
		for _, e := range AllUnitEnergies(w, nil, state, nil) {
			sum += e
		}
		assert.InDelta(t, 2*Energy(w, nil, state), sum, 1e-12)
	})

	t.Run("DstReuse", func(t *testing.T) {
		dst := make([]float64, 4)
		out := AllUnitEnergies(w, nil, stored, dst)
		assert.Equal(t, &dst[0], &out[0])
	})
}
