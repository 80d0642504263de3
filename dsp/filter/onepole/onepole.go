// Package onepole provides first-order IIR lowpass and highpass filters.
//
// These are the RC-style recursions
//
//	lowpass:  y[n] = y[n-1] + alpha*(x[n] - y[n-1])
//	highpass: y[n] = alpha*(y[n-1] + x[n] - x[n-1])
//
// with alpha derived from the cutoff frequency and sample rate. The
// whole-buffer helpers prime the filter state from the first sample, so a
// constant (DC) input passes a lowpass completely unchanged.
package onepole

import (
	"fmt"
	"math"
)

func validate(sampleRate, cutoffHz float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("onepole sample rate must be > 0 and finite: %f", sampleRate)
	}

	if cutoffHz <= 0 || cutoffHz >= sampleRate/2 || math.IsNaN(cutoffHz) {
		return fmt.Errorf("onepole cutoff must be in (0, %f): %f", sampleRate/2, cutoffHz)
	}

	return nil
}

// LowpassAlpha returns the smoothing factor dt/(rc+dt) for a first-order
// lowpass at the given cutoff.
func LowpassAlpha(sampleRate, cutoffHz float64) float64 {
	rc := 1 / (2 * math.Pi * cutoffHz)
	dt := 1 / sampleRate

	return dt / (rc + dt)
}

// HighpassAlpha returns the factor rc/(rc+dt) for a first-order highpass at
// the given cutoff.
func HighpassAlpha(sampleRate, cutoffHz float64) float64 {
	rc := 1 / (2 * math.Pi * cutoffHz)
	dt := 1 / sampleRate

	return rc / (rc + dt)
}

// LowPass is a stateful first-order lowpass filter.
type LowPass struct {
	alpha    float64
	previous float64
	primed   bool
}

// NewLowPass creates a first-order lowpass.
func NewLowPass(sampleRate, cutoffHz float64) (*LowPass, error) {
	if err := validate(sampleRate, cutoffHz); err != nil {
		return nil, err
	}

	return &LowPass{alpha: LowpassAlpha(sampleRate, cutoffHz)}, nil
}

// ProcessSample filters one sample. The first sample primes the state, so
// there is no startup transient toward zero.
func (f *LowPass) ProcessSample(x float64) float64 {
	if !f.primed {
		f.previous = x
		f.primed = true
	}

	f.previous += f.alpha * (x - f.previous)

	return f.previous
}

// ProcessInPlace filters buf in place.
func (f *LowPass) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = f.ProcessSample(buf[i])
	}
}

// Reset clears the filter state; the next sample primes it again.
func (f *LowPass) Reset() {
	f.previous = 0
	f.primed = false
}

// HighPass is a stateful first-order highpass filter.
type HighPass struct {
	alpha      float64
	prevInput  float64
	prevOutput float64
	primed     bool
}

// NewHighPass creates a first-order highpass.
func NewHighPass(sampleRate, cutoffHz float64) (*HighPass, error) {
	if err := validate(sampleRate, cutoffHz); err != nil {
		return nil, err
	}

	return &HighPass{alpha: HighpassAlpha(sampleRate, cutoffHz)}, nil
}

// ProcessSample filters one sample. The first sample primes both state
// registers, matching the whole-buffer helpers.
func (f *HighPass) ProcessSample(x float64) float64 {
	if !f.primed {
		f.prevInput = x
		f.prevOutput = x
		f.primed = true
	}

	y := f.alpha * (f.prevOutput + x - f.prevInput)
	f.prevOutput = y
	f.prevInput = x

	return y
}

// ProcessInPlace filters buf in place.
func (f *HighPass) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = f.ProcessSample(buf[i])
	}
}

// Reset clears the filter state; the next sample primes it again.
func (f *HighPass) Reset() {
	f.prevInput = 0
	f.prevOutput = 0
	f.primed = false
}

// LowPassInPlace applies a first-order lowpass to buf in place, priming the
// state from buf[0]. Empty buffers are a no-op.
func LowPassInPlace(buf []float64, sampleRate, cutoffHz float64) error {
	if err := validate(sampleRate, cutoffHz); err != nil {
		return err
	}

	if len(buf) == 0 {
		return nil
	}

	alpha := LowpassAlpha(sampleRate, cutoffHz)
	previous := buf[0]

	for i, x := range buf {
		previous += alpha * (x - previous)
		buf[i] = previous
	}

	return nil
}

// HighPassInPlace applies a first-order highpass to buf in place, priming
// both state registers from buf[0]. Empty buffers are a no-op.
func HighPassInPlace(buf []float64, sampleRate, cutoffHz float64) error {
	if err := validate(sampleRate, cutoffHz); err != nil {
		return err
	}

	if len(buf) == 0 {
		return nil
	}

	alpha := HighpassAlpha(sampleRate, cutoffHz)
	prevInput := buf[0]
	prevOutput := buf[0]

	for i, x := range buf {
		y := alpha * (prevOutput + x - prevInput)
		prevOutput = y
		prevInput = x
		buf[i] = y
	}

	return nil
}
