package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense(t *testing.T) {
	t.Run("AddOuter", func(t *testing.T) {
		d := NewDense(3)
		d.AddOuter([]float64{1, -1, 1})

		assert.Equal(t, 1.0, d.At(0, 0))
		assert.Equal(t, -1.0, d.At(0, 1))
		assert.Equal(t, 1.0, d.At(0, 2))
		assert.Equal(t, -1.0, d.At(1, 2))
		assert.True(t, d.IsSymmetric())
	})

	t.Run("AddAndScale", func(t *testing.T) {
		a := NewDense(2)
		a.AddOuter([]float64{1, -1})

		b := NewDense(2)
		b.AddOuter([]float64{1, 1})

		a.Add(b)
		assert.Equal(t, 2.0, a.At(0, 0))
		assert.Equal(t, 0.0, a.At(0, 1))

		a.Scale(0.5)
		assert.Equal(t, 1.0, a.At(0, 0))
	})

	t.Run("ZeroDiagonal", func(t *testing.T) {
		d := NewDense(2)
		d.AddOuter([]float64{1, -1})
		require.False(t, d.HasZeroDiagonal())

		d.ZeroDiagonal()
		assert.True(t, d.HasZeroDiagonal())
		assert.Equal(t, -1.0, d.At(1, 0))
	})

	t.Run("MulVec", func(t *testing.T) {
		d := NewDense(2)
		d.Set(0, 1, 2)
		d.Set(1, 0, 3)

		dst := make([]float64, 2)
		d.MulVec([]float64{1, -1}, dst)
		assert.Equal(t, []float64{-2, 3}, dst)

		assert.Equal(t, -2.0, d.RowDot(0, []float64{1, -1}))
	})

	t.Run("Clone", func(t *testing.T) {
		d := NewDense(2)
		d.Set(0, 1, 5)

		c := d.Clone()
		c.Set(0, 1, 7)

		assert.Equal(t, 5.0, d.At(0, 1))
		assert.Equal(t, 7.0, c.At(0, 1))
	})

	t.Run("FromData", func(t *testing.T) {
		d := FromData(2, []float64{0, 1, 1, 0})
		assert.True(t, d.IsSymmetric())
		assert.True(t, d.HasZeroDiagonal())

		assert.Panics(t, func() { FromData(2, []float64{1}) })
	})

	t.Run("IsSymmetric", func(t *testing.T) {
		d := NewDense(2)
		d.Set(0, 1, 1)
		assert.False(t, d.IsSymmetric())

		d.Set(1, 0, 1)
		assert.True(t, d.IsSymmetric())
	})
}

func TestVector(t *testing.T) {
	t.Run("Dot", func(t *testing.T) {
		assert.Equal(t, -1.0, Dot([]float64{1, -1, 1}, []float64{1, 1, -1}))
	})

	t.Run("Equal", func(t *testing.T) {
		assert.True(t, Equal([]float64{1, -1}, []float64{1, -1}))
		assert.False(t, Equal([]float64{1, -1}, []float64{1, 1}))
		assert.False(t, Equal([]float64{1}, []float64{1, 1}))
	})
}
