// Package dereverb reduces reverberation with a fixed two-stage pipeline:
// a first-order high-pass difference equation removes low-frequency room
// build-up, then quiet residuals below a magnitude threshold are attenuated
// as late reflections.
package dereverb

import (
	"fmt"
	"math"
)

const (
	defaultCutoffHz    = 100.0
	defaultThreshold   = 0.05
	defaultAttenuation = 0.8
)

// Pipeline is a per-sample dereverberator. The high-pass stage runs the
// recurrence y[i] = alpha*(y[i-1] + x[i] - x[i-1]) with
// alpha = dt/(rc+dt), rc = 1/(2*pi*cutoff) and dt = 1/sampleRate.
type Pipeline struct {
	sampleRate  float64
	cutoffHz    float64
	threshold   float64
	attenuation float64

	alpha      float64
	prevInput  float64
	prevOutput float64
}

// Option mutates pipeline construction parameters.
type Option func(*Pipeline) error

// WithCutoffHz sets the high-pass cutoff frequency.
func WithCutoffHz(cutoffHz float64) Option {
	return func(p *Pipeline) error {
		if cutoffHz <= 0 || math.IsNaN(cutoffHz) || math.IsInf(cutoffHz, 0) {
			return fmt.Errorf("dereverb cutoff must be > 0 and finite: %f", cutoffHz)
		}

		p.cutoffHz = cutoffHz

		return nil
	}
}

// WithThreshold sets the magnitude below which samples count as late
// reflections.
func WithThreshold(threshold float64) Option {
	return func(p *Pipeline) error {
		if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
			return fmt.Errorf("dereverb threshold must be >= 0 and finite: %f", threshold)
		}

		p.threshold = threshold

		return nil
	}
}

// WithAttenuation sets the gain applied to samples below the threshold.
func WithAttenuation(attenuation float64) Option {
	return func(p *Pipeline) error {
		if attenuation < 0 || attenuation > 1 || math.IsNaN(attenuation) {
			return fmt.Errorf("dereverb attenuation must be in [0, 1]: %f", attenuation)
		}

		p.attenuation = attenuation

		return nil
	}
}

// New creates a dereverb pipeline with the conventional constants
// (100 Hz cutoff, 0.05 threshold, 0.8 attenuation).
func New(sampleRate float64, opts ...Option) (*Pipeline, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("dereverb sample rate must be > 0 and finite: %f", sampleRate)
	}

	p := &Pipeline{
		sampleRate:  sampleRate,
		cutoffHz:    defaultCutoffHz,
		threshold:   defaultThreshold,
		attenuation: defaultAttenuation,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(p); err != nil {
			return nil, err
		}
	}

	rc := 1 / (2 * math.Pi * p.cutoffHz)
	dt := 1 / sampleRate
	p.alpha = dt / (rc + dt)

	return p, nil
}

// ProcessSample runs one sample through both stages.
func (p *Pipeline) ProcessSample(input float64) float64 {
	filtered := p.alpha * (p.prevOutput + input - p.prevInput)

	p.prevInput = input
	p.prevOutput = filtered

	if math.Abs(filtered) < p.threshold {
		return filtered * p.attenuation
	}

	return filtered
}

// Process returns a new buffer with reduced reverberation.
func (p *Pipeline) Process(input []float64) []float64 {
	out := make([]float64, len(input))
	for i, v := range input {
		out[i] = p.ProcessSample(v)
	}

	return out
}

// ProcessInPlace dereverberates buf in place.
func (p *Pipeline) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = p.ProcessSample(buf[i])
	}
}

// Reset clears the filter state.
func (p *Pipeline) Reset() {
	p.prevInput = 0
	p.prevOutput = 0
}

// SampleRate returns the sample rate in Hz.
func (p *Pipeline) SampleRate() float64 { return p.sampleRate }

// CutoffHz returns the high-pass cutoff frequency.
func (p *Pipeline) CutoffHz() float64 { return p.cutoffHz }

// Threshold returns the late-reflection magnitude threshold.
func (p *Pipeline) Threshold() float64 { return p.threshold }

// Attenuation returns the late-reflection gain.
func (p *Pipeline) Attenuation() float64 { return p.attenuation }

// Alpha returns the derived high-pass smoothing constant.
func (p *Pipeline) Alpha() float64 { return p.alpha }
