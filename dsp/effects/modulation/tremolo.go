package modulation

import (
	"fmt"
	"math"
)

const (
	defaultTremoloRateHz = 4.0
	defaultTremoloDepth  = 0.6
)

// Tremolo applies sinusoidal amplitude modulation. The per-sample gain is
//
//	(sin(phase)*0.5 + 0.5)*depth + (1 - depth)
//
// which sweeps between 1-depth and 1, so depth 0 is a bypass and depth 1
// modulates fully down to silence.
type Tremolo struct {
	sampleRate float64
	rateHz     float64
	depth      float64

	phase float64
}

// TremoloOption mutates tremolo construction parameters.
type TremoloOption func(*Tremolo) error

// WithTremoloRateHz sets the modulation speed in Hz.
func WithTremoloRateHz(rateHz float64) TremoloOption {
	return func(tr *Tremolo) error {
		if rateHz <= 0 || math.IsNaN(rateHz) || math.IsInf(rateHz, 0) {
			return fmt.Errorf("tremolo rate must be > 0 and finite: %f", rateHz)
		}

		tr.rateHz = rateHz

		return nil
	}
}

// WithTremoloDepth sets the modulation depth in [0, 1].
func WithTremoloDepth(depth float64) TremoloOption {
	return func(tr *Tremolo) error {
		if depth < 0 || depth > 1 || math.IsNaN(depth) {
			return fmt.Errorf("tremolo depth must be in [0, 1]: %f", depth)
		}

		tr.depth = depth

		return nil
	}
}

// NewTremolo creates a tremolo with practical defaults.
func NewTremolo(sampleRate float64, opts ...TremoloOption) (*Tremolo, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("tremolo sample rate must be > 0 and finite: %f", sampleRate)
	}

	tr := &Tremolo{
		sampleRate: sampleRate,
		rateHz:     defaultTremoloRateHz,
		depth:      defaultTremoloDepth,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(tr); err != nil {
			return nil, err
		}
	}

	return tr, nil
}

// ProcessSample modulates one sample and advances the LFO phase.
func (tr *Tremolo) ProcessSample(input float64) float64 {
	gain := (math.Sin(tr.phase)*0.5+0.5)*tr.depth + (1 - tr.depth)

	tr.phase += 2 * math.Pi * tr.rateHz / tr.sampleRate
	if tr.phase >= 2*math.Pi {
		tr.phase = math.Mod(tr.phase, 2*math.Pi)
	}

	return input * gain
}

// ProcessInPlace applies the tremolo to buf in place.
func (tr *Tremolo) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = tr.ProcessSample(buf[i])
	}
}

// Reset rewinds the LFO phase to zero.
func (tr *Tremolo) Reset() {
	tr.phase = 0
}

// SampleRate returns the sample rate in Hz.
func (tr *Tremolo) SampleRate() float64 { return tr.sampleRate }

// RateHz returns the LFO speed in Hz.
func (tr *Tremolo) RateHz() float64 { return tr.rateHz }

// Depth returns the modulation depth.
func (tr *Tremolo) Depth() float64 { return tr.depth }
