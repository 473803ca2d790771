package engine

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// StepTrace captures the outcome of one update step when tracing is
// enabled. Flipped holds the indices of the units whose value changed
// during the step; an empty bitmap marks the confirming fixed-point step.
//
// Energy is evaluated on the merged state after the step. It is
// non-increasing step over step only for ModeAsynchronous; under
// ModeSynchronous and ModeAsyncBlocked the per-step descent guarantee
// does not hold and traced energies may rise between steps.
type StepTrace struct {
	Step    int
	Energy  float64
	Flipped *roaring.Bitmap
}

// FlipCount returns the number of units that changed during the step.
func (st StepTrace) FlipCount() int {
	if st.Flipped == nil {
		return 0
	}

	return int(st.Flipped.GetCardinality())
}

func newFlipBitmap(flipped []uint32) *roaring.Bitmap {
	bm := roaring.New()
	bm.AddMany(flipped)

	return bm
}
