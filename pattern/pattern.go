// Package pattern provides bipolar pattern vectors, validation and storage
// for Hopfield network training, plus a seeded random pattern generator.
package pattern

import (
	"fmt"
	"slices"
)

// Pattern is a fixed-length bipolar vector: every element is exactly +1 or -1.
type Pattern []float64

// ErrDimensionMismatch indicates a pattern/state dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidValue indicates a non-bipolar element.
type ErrInvalidValue struct {
	Index int
	Value float64
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value at index %d: %v is not +1/-1", e.Index, e.Value)
}

// Validate checks that values has length dim and contains only +1/-1
// elements. It returns *ErrDimensionMismatch or *ErrInvalidValue on the
// first violation found.
func Validate(values []float64, dim int) error {
	if len(values) != dim {
		return &ErrDimensionMismatch{Expected: dim, Actual: len(values)}
	}
	for i, v := range values {
		if v != 1 && v != -1 {
			return &ErrInvalidValue{Index: i, Value: v}
		}
	}

	return nil
}

// New validates values and returns them as a Pattern. The input is copied
// so later caller mutation cannot invalidate the pattern.
func New(values []float64, dim int) (Pattern, error) {
	if err := Validate(values, dim); err != nil {
		return nil, err
	}

	return Pattern(slices.Clone(values)), nil
}

// Clone returns a deep copy of p.
func (p Pattern) Clone() Pattern {
	return Pattern(slices.Clone(p))
}

// Hamming returns the number of positions where p and q differ.
// Both patterns must share the same length.
func (p Pattern) Hamming(q Pattern) int {
	var d int
	for i := range p {
		if p[i] != q[i] {
			d++
		}
	}

	return d
}
