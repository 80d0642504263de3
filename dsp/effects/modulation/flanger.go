package modulation

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-audiofx/dsp/delay"
)

const (
	defaultFlangerDepthMs  = 2.0
	defaultFlangerRateHz   = 0.25
	defaultFlangerFeedback = 0.25
	defaultFlangerMix      = 0.5

	maxFlangerFeedback = 0.99
)

// Flanger sweeps a short delay tap with a sinusoidal LFO and mixes it back
// against the dry signal. The read offset is an integer number of samples
// between 0 and the line capacity; both extremes alias to the write cursor
// (the line's full-capacity tap), so a zero-depth sweep degenerates to a
// fixed comb rather than underflowing the index arithmetic.
type Flanger struct {
	sampleRate float64
	depthMs    float64
	rateHz     float64
	feedback   float64
	mix        float64

	phase float64
	line  *delay.Line
}

// FlangerOption mutates flanger construction parameters.
type FlangerOption func(*Flanger) error

// WithFlangerDepthMs sets the maximum sweep delay in milliseconds.
func WithFlangerDepthMs(depthMs float64) FlangerOption {
	return func(f *Flanger) error {
		if depthMs <= 0 || math.IsNaN(depthMs) || math.IsInf(depthMs, 0) {
			return fmt.Errorf("flanger depth must be > 0 and finite: %f", depthMs)
		}

		f.depthMs = depthMs

		return nil
	}
}

// WithFlangerRateHz sets the LFO speed in Hz.
func WithFlangerRateHz(rateHz float64) FlangerOption {
	return func(f *Flanger) error {
		if rateHz <= 0 || math.IsNaN(rateHz) || math.IsInf(rateHz, 0) {
			return fmt.Errorf("flanger rate must be > 0 and finite: %f", rateHz)
		}

		f.rateHz = rateHz

		return nil
	}
}

// WithFlangerFeedback sets the feedback amount in [0, 0.99].
func WithFlangerFeedback(feedback float64) FlangerOption {
	return func(f *Flanger) error {
		if feedback < 0 || feedback > maxFlangerFeedback || math.IsNaN(feedback) {
			return fmt.Errorf("flanger feedback must be in [0, %v]: %f", maxFlangerFeedback, feedback)
		}

		f.feedback = feedback

		return nil
	}
}

// WithFlangerMix sets the wet amount in [0, 1].
func WithFlangerMix(mix float64) FlangerOption {
	return func(f *Flanger) error {
		if mix < 0 || mix > 1 || math.IsNaN(mix) {
			return fmt.Errorf("flanger mix must be in [0, 1]: %f", mix)
		}

		f.mix = mix

		return nil
	}
}

// NewFlanger creates a flanger with practical defaults.
func NewFlanger(sampleRate float64, opts ...FlangerOption) (*Flanger, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("flanger sample rate must be > 0 and finite: %f", sampleRate)
	}

	f := &Flanger{
		sampleRate: sampleRate,
		depthMs:    defaultFlangerDepthMs,
		rateHz:     defaultFlangerRateHz,
		feedback:   defaultFlangerFeedback,
		mix:        defaultFlangerMix,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(f); err != nil {
			return nil, err
		}
	}

	line, err := delay.NewDuration(sampleRate, f.depthMs)
	if err != nil {
		return nil, err
	}

	f.line = line

	return f, nil
}

// ProcessSample runs one sample through the swept delay.
func (f *Flanger) ProcessSample(input float64) float64 {
	lfo := math.Sin(f.phase)*0.5 + 0.5
	currentDelay := int(lfo * float64(f.line.Len()))

	delayed := f.line.Tap(currentDelay)

	f.line.Write(input + delayed*f.feedback)
	f.line.Advance()

	f.phase += 2 * math.Pi * f.rateHz / f.sampleRate
	if f.phase >= 2*math.Pi {
		f.phase = math.Mod(f.phase, 2*math.Pi)
	}

	return input*(1-f.mix) + delayed*f.mix
}

// ProcessInPlace applies the flanger to buf in place.
func (f *Flanger) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = f.ProcessSample(buf[i])
	}
}

// Reset clears the delay history and rewinds the LFO phase.
func (f *Flanger) Reset() {
	f.line.Reset()
	f.phase = 0
}

// SampleRate returns the sample rate in Hz.
func (f *Flanger) SampleRate() float64 { return f.sampleRate }

// DepthMs returns the maximum sweep delay in milliseconds.
func (f *Flanger) DepthMs() float64 { return f.depthMs }

// RateHz returns the LFO speed in Hz.
func (f *Flanger) RateHz() float64 { return f.rateHz }

// Feedback returns the feedback amount.
func (f *Flanger) Feedback() float64 { return f.feedback }

// Mix returns the wet amount.
func (f *Flanger) Mix() float64 { return f.mix }

// MaxDelaySamples returns the sweep range in samples.
func (f *Flanger) MaxDelaySamples() int { return f.line.Len() }
