// Package persistence provides the binary snapshot format for trained
// networks: a fixed header followed by the row-major weight matrix and an
// optional bias vector, checksummed and optionally compressed.
package persistence

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/hupe1980/hopgo/internal/mat"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Snapshot is the serializable form of a trained network.
type Snapshot struct {
	Weights *mat.Dense
	Bias    []float64 // nil when the network has no bias
}

type writeOptions struct {
	compression Compression
}

// WriteOption configures snapshot encoding.
type WriteOption func(*writeOptions)

// WithCompression selects the payload codec. Default: CompressionNone.
func WithCompression(c Compression) WriteOption {
	return func(o *writeOptions) {
		o.compression = c
	}
}

// Write encodes snap to w.
func Write(w io.Writer, snap *Snapshot, optFns ...WriteOption) error {
	o := writeOptions{compression: CompressionNone}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	dim := snap.Weights.Dim()
	if snap.Bias != nil && len(snap.Bias) != dim {
		return fmt.Errorf("bias length %d does not match dimension %d", len(snap.Bias), dim)
	}

	payload := encodePayload(snap)

	header := FileHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(o.compression),
		Dimension:   uint32(dim),
		Checksum:    crc32.Checksum(payload, castagnoli),
	}
	if snap.Bias != nil {
		header.HasBias = 1
	}

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}

	switch o.compression {
	case CompressionNone:
		_, err := w.Write(payload)
		return err
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if _, err := zw.Write(payload); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		if _, err := lw.Write(payload); err != nil {
			lw.Close()
			return err
		}
		return lw.Close()
	default:
		return fmt.Errorf("%w: %d", ErrInvalidCompression, o.compression)
	}
}

// Read decodes a snapshot from r, validating the checksum and the
// weight-matrix invariants. Violations are reported via ErrCorruptData.
func Read(r io.Reader) (*Snapshot, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	if header.Dimension == 0 || header.Dimension > MaxDimension {
		return nil, fmt.Errorf("%w: invalid dimension %d", ErrCorruptData, header.Dimension)
	}

	dim := int(header.Dimension)
	want := int64(dim) * int64(dim) * 8
	if header.HasBias == 1 {
		want += int64(dim) * 8
	}

	// Bound the decompressed read so a corrupt stream cannot allocate
	// past the size the header admits.
	var payload []byte
	var err error
	switch Compression(header.Compression) {
	case CompressionNone:
		payload, err = io.ReadAll(io.LimitReader(r, want+1))
	case CompressionZstd:
		var zr *zstd.Decoder
		zr, err = zstd.NewReader(r)
		if err == nil {
			payload, err = io.ReadAll(io.LimitReader(zr, want+1))
			zr.Close()
		}
	case CompressionLZ4:
		payload, err = io.ReadAll(io.LimitReader(lz4.NewReader(r), want+1))
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, header.Compression)
	}
	if err != nil {
		return nil, err
	}

	if int64(len(payload)) != want {
		return nil, fmt.Errorf("%w: payload size %d, want %d", ErrCorruptData, len(payload), want)
	}
	if sum := crc32.Checksum(payload, castagnoli); sum != header.Checksum {
		return nil, fmt.Errorf("%w: checksum 0x%08x, want 0x%08x", ErrCorruptData, sum, header.Checksum)
	}

	weights := mat.FromData(dim, decodeFloats(payload[:dim*dim*8]))
	if !weights.IsSymmetric() {
		return nil, fmt.Errorf("%w: weight matrix is not symmetric", ErrCorruptData)
	}
	if !weights.HasZeroDiagonal() {
		return nil, fmt.Errorf("%w: weight matrix has a non-zero diagonal", ErrCorruptData)
	}

	snap := &Snapshot{Weights: weights}
	if header.HasBias == 1 {
		snap.Bias = decodeFloats(payload[dim*dim*8:])
	}

	return snap, nil
}

func encodePayload(snap *Snapshot) []byte {
	weights := snap.Weights.Data()

	out := make([]byte, 0, (len(weights)+len(snap.Bias))*8)
	for _, v := range weights {
		out = binary.LittleEndian.AppendUint64(out, math.Float64bits(v))
	}
	for _, v := range snap.Bias {
		out = binary.LittleEndian.AppendUint64(out, math.Float64bits(v))
	}

	return out
}

func decodeFloats(b []byte) []float64 {
	out := make([]float64, len(b)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}

	return out
}
