package engine

import "github.com/hupe1980/hopgo/internal/mat"

// Converged reports whether an update step reached a fixed point: the new
// state is element-wise identical to the previous one. The domain is
// discrete bipolar, so exact equality is the correct notion and no
// tolerance parameter exists.
func Converged(prev, next []float64) bool {
	return mat.Equal(prev, next)
}
