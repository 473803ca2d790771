package hopgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hopgo/hebbian"
	"github.com/hupe1980/hopgo/pattern"
	"github.com/hupe1980/hopgo/persistence"
)

var (
	// ErrNotTrained is returned when recall or energy is requested
	// before any weight matrix exists.
	ErrNotTrained = errors.New("network is not trained")

	// ErrEmptyPatternSet is returned when training is requested with no
	// stored patterns.
	ErrEmptyPatternSet = errors.New("empty pattern set")

	// ErrCorruptData is returned when a snapshot fails validation on load.
	ErrCorruptData = errors.New("corrupt snapshot data")
)

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrDimensionMismatch indicates a pattern/state dimensionality mismatch.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidValue indicates a non-bipolar element in a pattern or state.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidValue struct {
	Index int
	Value float64
	cause error
}

func (e *ErrInvalidValue) Error() string {
	return fmt.Sprintf("invalid value at index %d: %v is not +1/-1", e.Index, e.Value)
}

func (e *ErrInvalidValue) Unwrap() error { return e.cause }

// translateError normalizes subpackage errors into the public error types
// at the API boundary.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dm *pattern.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	var iv *pattern.ErrInvalidValue
	if errors.As(err, &iv) {
		return &ErrInvalidValue{Index: iv.Index, Value: iv.Value, cause: err}
	}

	if errors.Is(err, hebbian.ErrEmptyPatternSet) {
		return fmt.Errorf("%w: %w", ErrEmptyPatternSet, err)
	}
	if errors.Is(err, persistence.ErrCorruptData) {
		return fmt.Errorf("%w: %w", ErrCorruptData, err)
	}

	return err
}
