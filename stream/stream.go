// Package stream moves sample blocks between sources, processors and the
// audio output device.
package stream

import (
	"context"
	"fmt"
	"io"
)

// Source yields successive samples from some producer. Read fills dst and
// returns the number of samples written, with io.EOF once the source is
// exhausted.
type Source interface {
	SampleRate() float64
	Read(dst []float64) (int, error)
}

// SliceSource serves a fixed buffer as a Source.
type SliceSource struct {
	sampleRate float64
	samples    []float64
	pos        int
}

// NewSliceSource wraps samples at the given sample rate.
func NewSliceSource(sampleRate float64, samples []float64) (*SliceSource, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("stream: sample rate must be > 0: %f", sampleRate)
	}

	return &SliceSource{
		sampleRate: sampleRate,
		samples:    samples,
	}, nil
}

// SampleRate returns the sample rate in Hz.
func (s *SliceSource) SampleRate() float64 { return s.sampleRate }

// Read copies the next samples into dst.
func (s *SliceSource) Read(dst []float64) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := copy(dst, s.samples[s.pos:])
	s.pos += n

	return n, nil
}

// Reset rewinds the source to the beginning.
func (s *SliceSource) Reset() {
	s.pos = 0
}

// BlockHandler consumes one block of samples. The block is reused between
// calls; handlers must copy it to retain the data.
type BlockHandler func(block []float64) error

// Blocks reads src in fixed-size blocks and invokes handler for each one.
// The final block may be shorter than blockSize. Processing stops early
// when ctx is cancelled or the handler returns an error.
func Blocks(ctx context.Context, src Source, blockSize int, handler BlockHandler) error {
	if src == nil {
		return fmt.Errorf("stream: source must not be nil")
	}

	if blockSize <= 0 {
		return fmt.Errorf("stream: block size must be > 0: %d", blockSize)
	}

	if handler == nil {
		return fmt.Errorf("stream: handler must not be nil")
	}

	block := make([]float64, blockSize)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		filled := 0
		for filled < blockSize {
			n, err := src.Read(block[filled:])
			filled += n

			if err == io.EOF {
				if filled > 0 {
					if herr := handler(block[:filled]); herr != nil {
						return herr
					}
				}

				return nil
			}

			if err != nil {
				return fmt.Errorf("stream: read failed: %w", err)
			}
		}

		if err := handler(block); err != nil {
			return err
		}
	}
}
