package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-audiofx/dsp/delay"
)

const (
	defaultDelayTimeMs  = 250.0
	defaultDelayFeedback = 0.35

	maxDelayFeedback = 0.99
)

// Delay is a single delay tap with feedback. Its output is the delayed
// signal only, not a dry/wet sum: the tap output matches the input stream
// shifted by the delay time, with feedback echoes folded in. Callers that
// want a mix blend the output with their dry signal themselves.
type Delay struct {
	sampleRate float64
	timeMs     float64
	feedback   float64

	line *delay.Line
}

// DelayOption mutates delay construction parameters.
type DelayOption func(*Delay) error

// WithDelayTimeMs sets the delay time in milliseconds.
func WithDelayTimeMs(ms float64) DelayOption {
	return func(d *Delay) error {
		if ms < 0 || math.IsNaN(ms) || math.IsInf(ms, 0) {
			return fmt.Errorf("delay time must be >= 0 and finite: %f", ms)
		}

		d.timeMs = ms

		return nil
	}
}

// WithDelayFeedback sets the feedback amount in [0, 0.99].
func WithDelayFeedback(feedback float64) DelayOption {
	return func(d *Delay) error {
		if feedback < 0 || feedback > maxDelayFeedback || math.IsNaN(feedback) {
			return fmt.Errorf("delay feedback must be in [0, %v]: %f", maxDelayFeedback, feedback)
		}

		d.feedback = feedback

		return nil
	}
}

// NewDelay creates a feedback delay tap with practical defaults.
func NewDelay(sampleRate float64, opts ...DelayOption) (*Delay, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("delay sample rate must be > 0 and finite: %f", sampleRate)
	}

	d := &Delay{
		sampleRate: sampleRate,
		timeMs:     defaultDelayTimeMs,
		feedback:   defaultDelayFeedback,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(d); err != nil {
			return nil, err
		}
	}

	line, err := delay.NewDuration(sampleRate, d.timeMs)
	if err != nil {
		return nil, err
	}

	d.line = line

	return d, nil
}

// ProcessSample advances the tap by one sample and returns the delayed
// signal. The input plus feedback-scaled echo is written back into the
// line.
func (d *Delay) ProcessSample(input float64) float64 {
	delayed := d.line.Read()
	d.line.Write(input + delayed*d.feedback)
	d.line.Advance()

	return delayed
}

// ProcessInPlace applies the tap to buf in place.
func (d *Delay) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = d.ProcessSample(buf[i])
	}
}

// Reset clears the delay history.
func (d *Delay) Reset() {
	d.line.Reset()
}

// SampleRate returns the sample rate in Hz.
func (d *Delay) SampleRate() float64 { return d.sampleRate }

// TimeMs returns the configured delay time in milliseconds.
func (d *Delay) TimeMs() float64 { return d.timeMs }

// Feedback returns the feedback amount.
func (d *Delay) Feedback() float64 { return d.feedback }

// DelaySamples returns the realized delay length in samples.
func (d *Delay) DelaySamples() int { return d.line.Len() }
