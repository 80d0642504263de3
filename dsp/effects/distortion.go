package effects

import (
	"fmt"
	"math"
)

const (
	defaultDistortionGain      = 2.0
	defaultDistortionThreshold = 0.5
)

// Distortion is a stateless soft clipper: the signal is amplified, then
// anything beyond the threshold is folded back smoothly with tanh, adding
// harmonic content without the hard edges of digital clipping.
type Distortion struct {
	gain      float64
	threshold float64
}

// DistortionOption mutates distortion construction parameters.
type DistortionOption func(*Distortion) error

// WithDistortionGain sets the pre-clip gain. Must be > 0.
func WithDistortionGain(gain float64) DistortionOption {
	return func(d *Distortion) error {
		if gain <= 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
			return fmt.Errorf("distortion gain must be > 0 and finite: %f", gain)
		}

		d.gain = gain

		return nil
	}
}

// WithDistortionThreshold sets the clip threshold in (0, 1).
func WithDistortionThreshold(threshold float64) DistortionOption {
	return func(d *Distortion) error {
		if threshold <= 0 || threshold >= 1 || math.IsNaN(threshold) {
			return fmt.Errorf("distortion threshold must be in (0, 1): %f", threshold)
		}

		d.threshold = threshold

		return nil
	}
}

// NewDistortion creates a soft clipper with practical defaults.
func NewDistortion(opts ...DistortionOption) (*Distortion, error) {
	d := &Distortion{
		gain:      defaultDistortionGain,
		threshold: defaultDistortionThreshold,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// ProcessSample applies gain and soft clipping to one sample.
func (d *Distortion) ProcessSample(input float64) float64 {
	x := input * d.gain
	t := d.threshold

	switch {
	case x > t:
		return t + (1-t)*math.Tanh((x-t)/(1-t))
	case x < -t:
		return -t + (-1+t)*math.Tanh((x+t)/(-1+t))
	default:
		return x
	}
}

// ProcessInPlace applies the clipper to buf in place.
func (d *Distortion) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = d.ProcessSample(buf[i])
	}
}

// Gain returns the pre-clip gain.
func (d *Distortion) Gain() float64 { return d.gain }

// Threshold returns the clip threshold.
func (d *Distortion) Threshold() float64 { return d.threshold }
