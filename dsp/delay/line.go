// Package delay provides a fixed-capacity circular delay line, the storage
// primitive under the delay, reverb and flanger effects.
package delay

import (
	"fmt"
	"math"
)

// Line is a circular buffer with a single cursor shared by reads and
// writes. The cursor advances by exactly one per processed sample and wraps
// modulo the capacity. Reading at the cursor before writing yields a delay
// of exactly Len samples.
type Line struct {
	buffer []float64
	pos    int
}

// New returns a delay line of fixed capacity. size must be at least 1.
func New(size int) (*Line, error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}

	return &Line{buffer: make([]float64, size)}, nil
}

// NewDuration returns a delay line sized round(sampleRate*ms/1000), with a
// minimum capacity of 1. A duration that rounds to zero therefore yields a
// single-slot line; combined with read-before-write that is a one-sample
// delay, the closest representable to "no delay".
func NewDuration(sampleRate, durationMs float64) (*Line, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("delay sample rate must be > 0 and finite: %f", sampleRate)
	}

	if durationMs < 0 || math.IsNaN(durationMs) || math.IsInf(durationMs, 0) {
		return nil, fmt.Errorf("delay duration must be >= 0 and finite: %f", durationMs)
	}

	size := int(math.Round(sampleRate * durationMs / 1000))
	if size < 1 {
		size = 1
	}

	return &Line{buffer: make([]float64, size)}, nil
}

// Len returns the fixed capacity.
func (l *Line) Len() int {
	return len(l.buffer)
}

// Read returns the sample stored at the cursor. Called before Write it
// yields the value written Len samples ago.
func (l *Line) Read() float64 {
	return l.buffer[l.pos]
}

// Write stores sample at the cursor without advancing.
func (l *Line) Write(sample float64) {
	l.buffer[l.pos] = sample
}

// Advance moves the cursor forward one slot, wrapping at the capacity.
func (l *Line) Advance() {
	l.pos++
	if l.pos >= len(l.buffer) {
		l.pos = 0
	}
}

// Tap returns the sample offset slots behind the cursor. offset 0 reads the
// cursor itself; offset Len wraps to the same slot. offsets are reduced
// modulo the capacity, so any offset in [0, Len] is safe.
func (l *Line) Tap(offset int) float64 {
	size := len(l.buffer)
	idx := (l.pos - offset%size + size) % size

	return l.buffer[idx]
}

// Pos returns the current cursor, always in [0, Len).
func (l *Line) Pos() int {
	return l.pos
}

// Reset zeroes the buffer and rewinds the cursor.
func (l *Line) Reset() {
	for i := range l.buffer {
		l.buffer[i] = 0
	}

	l.pos = 0
}
