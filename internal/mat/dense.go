package mat

// Dense is a square N×N matrix stored in row-major order.
//
// The zero value is not usable; construct with NewDense or FromData.
type Dense struct {
	n    int
	data []float64
}

// NewDense creates an n×n matrix with all entries zero.
// It panics if n <= 0; dimension validation belongs to the caller.
func NewDense(n int) *Dense {
	if n <= 0 {
		panic("mat: non-positive dimension")
	}
	return &Dense{
		n:    n,
		data: make([]float64, n*n),
	}
}

// FromData wraps an existing row-major backing slice without copying.
// len(data) must equal n*n.
func FromData(n int, data []float64) *Dense {
	if n <= 0 || len(data) != n*n {
		panic("mat: backing slice length does not match dimension")
	}
	return &Dense{n: n, data: data}
}

// Dim returns the matrix dimension N.
func (d *Dense) Dim() int { return d.n }

// At returns the entry at row i, column j.
func (d *Dense) At(i, j int) float64 { return d.data[i*d.n+j] }

// Set stores v at row i, column j.
func (d *Dense) Set(i, j int, v float64) { d.data[i*d.n+j] = v }

// Row returns row i as a slice aliasing the matrix storage.
// Mutating the returned slice mutates the matrix.
func (d *Dense) Row(i int) []float64 {
	return d.data[i*d.n : (i+1)*d.n]
}

// Data returns the raw row-major backing slice. Used by the persistence
// layer for zero-copy serialization.
func (d *Dense) Data() []float64 { return d.data }

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	out := NewDense(d.n)
	copy(out.data, d.data)
	return out
}

// AddOuter accumulates the outer product v⊗vᵀ into the matrix.
//
// SAFETY: assumes len(v) == Dim(). It does NOT perform bounds checks;
// callers must ensure lengths match.
func (d *Dense) AddOuter(v []float64) {
	for i := 0; i < d.n; i++ {
		vi := v[i]
		row := d.Row(i)
		for j := 0; j < d.n; j++ {
			row[j] += vi * v[j]
		}
	}
}

// Add accumulates other into the receiver entry-wise.
// Both matrices must share the same dimension.
func (d *Dense) Add(other *Dense) {
	for i, v := range other.data {
		d.data[i] += v
	}
}

// Scale multiplies every entry by s.
func (d *Dense) Scale(s float64) {
	for i := range d.data {
		d.data[i] *= s
	}
}

// ZeroDiagonal sets every diagonal entry to zero.
func (d *Dense) ZeroDiagonal() {
	for i := 0; i < d.n; i++ {
		d.data[i*d.n+i] = 0
	}
}

// IsSymmetric reports whether d[i][j] == d[j][i] for all i, j.
// Exact comparison: Hebbian sums are built symmetrically, so no
// tolerance is needed.
func (d *Dense) IsSymmetric() bool {
	for i := 0; i < d.n; i++ {
		for j := i + 1; j < d.n; j++ {
			if d.At(i, j) != d.At(j, i) {
				return false
			}
		}
	}
	return true
}

// HasZeroDiagonal reports whether every diagonal entry is exactly zero.
func (d *Dense) HasZeroDiagonal() bool {
	for i := 0; i < d.n; i++ {
		if d.At(i, i) != 0 {
			return false
		}
	}
	return true
}

// MulVec computes dst = d·x.
//
// SAFETY: assumes len(x) == len(dst) == Dim().
func (d *Dense) MulVec(x, dst []float64) {
	for i := 0; i < d.n; i++ {
		dst[i] = Dot(d.Row(i), x)
	}
}

// RowDot returns the dot product of row i with x.
//
// SAFETY: assumes len(x) == Dim().
func (d *Dense) RowDot(i int, x []float64) float64 {
	return Dot(d.Row(i), x)
}
