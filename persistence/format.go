package persistence

import (
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies hopgo snapshot files (ASCII: "HOP1")
	MagicNumber = 0x484F5031
	// Version is the current snapshot format version (v1.0)
	Version = 0x00010000

	// MaxDimension caps the dimension a snapshot header may declare.
	// The N x N float64 payload of a larger network would not fit in
	// memory anyway, and the cap keeps every size computation safely
	// inside int64.
	MaxDimension = 1 << 16
)

// Compression selects the codec applied to the snapshot payload.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidCompression = errors.New("unsupported compression codec")

	// ErrCorruptData is returned when a snapshot fails checksum
	// validation or violates the weight-matrix invariants (symmetry,
	// zero diagonal) on load.
	ErrCorruptData = errors.New("corrupt snapshot data")
)

// FileHeader is the fixed-size header at the start of every snapshot.
type FileHeader struct {
	Magic       uint32 // 0x484F5031 ("HOP1")
	Version     uint32 // Snapshot format version
	Compression uint8  // Payload codec
	HasBias     uint8  // 1 when a bias vector follows the weights
	Padding     [2]byte
	Dimension   uint32 // Network dimension N
	Checksum    uint32 // CRC32-C of the uncompressed payload
}
