package engine

import "errors"

var (
	// ErrPoolClosed is returned when work is submitted to a closed pool.
	ErrPoolClosed = errors.New("worker pool is closed")

	// ErrInvalidMode is returned for an unknown update mode.
	ErrInvalidMode = errors.New("invalid update mode")

	// ErrInvalidSweepOrder is returned for an unknown sweep order.
	ErrInvalidSweepOrder = errors.New("invalid sweep order")
)
