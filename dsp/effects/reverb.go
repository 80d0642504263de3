package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-audiofx/dsp/core"
	"github.com/cwbudde/algo-audiofx/dsp/delay"
)

const (
	defaultReverbRoomSize = 0.5
	defaultReverbDamping  = 0.5
)

// defaultReverbDelayTimesMs are mutually prime delay times in milliseconds.
// Prime lengths keep the comb resonances from aligning into an audible
// periodic ring.
var defaultReverbDelayTimesMs = []float64{29, 37, 41, 43}

// Reverb is a parallel comb-filter reverb: each comb is a delay line fed
// back through a damping gain, and the summed comb outputs are mixed
// against the dry signal by the room size.
type Reverb struct {
	sampleRate float64
	roomSize   float64
	damping    float64
	timesMs    []float64

	lines []*delay.Line
}

// ReverbOption mutates reverb construction parameters.
type ReverbOption func(*Reverb) error

// WithReverbRoomSize sets the wet mix in [0, 1].
func WithReverbRoomSize(roomSize float64) ReverbOption {
	return func(r *Reverb) error {
		if roomSize < 0 || roomSize > 1 || math.IsNaN(roomSize) {
			return fmt.Errorf("reverb room size must be in [0, 1]: %f", roomSize)
		}

		r.roomSize = roomSize

		return nil
	}
}

// WithReverbDamping sets the comb feedback gain in [0, 1].
func WithReverbDamping(damping float64) ReverbOption {
	return func(r *Reverb) error {
		if damping < 0 || damping > 1 || math.IsNaN(damping) {
			return fmt.Errorf("reverb damping must be in [0, 1]: %f", damping)
		}

		r.damping = damping

		return nil
	}
}

// WithReverbDelayTimesMs overrides the comb delay times. Times should be
// mutually prime in samples for the smoothest tail.
func WithReverbDelayTimesMs(timesMs []float64) ReverbOption {
	return func(r *Reverb) error {
		if len(timesMs) == 0 {
			return fmt.Errorf("reverb needs at least one comb delay time")
		}

		for _, ms := range timesMs {
			if ms <= 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
				return fmt.Errorf("reverb delay time must be > 0 and finite: %f", ms)
			}
		}

		r.timesMs = append([]float64(nil), timesMs...)

		return nil
	}
}

// NewReverb creates a comb reverb with the default four-comb prime tuning.
func NewReverb(sampleRate float64, opts ...ReverbOption) (*Reverb, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("reverb sample rate must be > 0 and finite: %f", sampleRate)
	}

	r := &Reverb{
		sampleRate: sampleRate,
		roomSize:   defaultReverbRoomSize,
		damping:    defaultReverbDamping,
		timesMs:    defaultReverbDelayTimesMs,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(r); err != nil {
			return nil, err
		}
	}

	r.lines = make([]*delay.Line, len(r.timesMs))

	for i, ms := range r.timesMs {
		line, err := delay.NewDuration(sampleRate, ms)
		if err != nil {
			return nil, err
		}

		r.lines[i] = line
	}

	return r, nil
}

// ProcessSample runs one sample through all combs and returns the
// room-size-weighted mix of dry input and summed comb outputs.
func (r *Reverb) ProcessSample(input float64) float64 {
	var wet float64

	for _, line := range r.lines {
		delayed := line.Read()
		line.Write(core.FlushDenormals(input + delayed*r.damping))
		line.Advance()

		wet += delayed
	}

	return input*(1-r.roomSize) + wet*r.roomSize
}

// ProcessInPlace applies the reverb to buf in place.
func (r *Reverb) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = r.ProcessSample(buf[i])
	}
}

// Reset clears all comb histories.
func (r *Reverb) Reset() {
	for _, line := range r.lines {
		line.Reset()
	}
}

// SampleRate returns the sample rate in Hz.
func (r *Reverb) SampleRate() float64 { return r.sampleRate }

// RoomSize returns the wet mix.
func (r *Reverb) RoomSize() float64 { return r.roomSize }

// Damping returns the comb feedback gain.
func (r *Reverb) Damping() float64 { return r.damping }

// NumCombs returns the number of parallel comb lines.
func (r *Reverb) NumCombs() int { return len(r.lines) }
