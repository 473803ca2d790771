package mat

// Dot calculates the dot product of two vectors.
//
// SAFETY: assumes len(a) == len(b). It does NOT perform bounds checks
// for performance reasons; callers must ensure lengths match.
func Dot(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// Equal reports whether a and b are element-wise identical.
// The Hopfield state domain is discrete bipolar, so exact comparison is
// the correct notion of equality.
func Equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
