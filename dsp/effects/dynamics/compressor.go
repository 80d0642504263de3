package dynamics

import (
	"fmt"
	"math"
)

const (
	defaultCompressorThreshold = 0.5
	defaultCompressorRatio     = 4.0
	defaultCompressorAttackMs  = 10.0
	defaultCompressorReleaseMs = 100.0
)

// Compressor reduces gain once the instantaneous input level exceeds the
// threshold. Above the threshold the gain is pulled toward the compressed
// level threshold + (|x|-threshold)/ratio with the attack coefficient;
// below it the gain recovers toward unity with the release coefficient.
type Compressor struct {
	sampleRate float64
	threshold  float64
	ratio      float64
	attackMs   float64
	releaseMs  float64

	attackCoeff  float64
	releaseCoeff float64
	gain         float64
}

// CompressorOption mutates compressor construction parameters.
type CompressorOption func(*Compressor) error

// WithCompressorThreshold sets the linear level above which compression engages.
func WithCompressorThreshold(threshold float64) CompressorOption {
	return func(c *Compressor) error {
		if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
			return fmt.Errorf("compressor threshold must be >= 0 and finite: %f", threshold)
		}

		c.threshold = threshold

		return nil
	}
}

// WithCompressorRatio sets the compression ratio (n:1).
func WithCompressorRatio(ratio float64) CompressorOption {
	return func(c *Compressor) error {
		if ratio < 1 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
			return fmt.Errorf("compressor ratio must be >= 1: %f", ratio)
		}

		c.ratio = ratio

		return nil
	}
}

// WithCompressorAttackMs sets the attack time constant in milliseconds.
func WithCompressorAttackMs(attackMs float64) CompressorOption {
	return func(c *Compressor) error {
		if attackMs <= 0 || math.IsNaN(attackMs) || math.IsInf(attackMs, 0) {
			return fmt.Errorf("compressor attack must be > 0 and finite: %f", attackMs)
		}

		c.attackMs = attackMs

		return nil
	}
}

// WithCompressorReleaseMs sets the release time constant in milliseconds.
func WithCompressorReleaseMs(releaseMs float64) CompressorOption {
	return func(c *Compressor) error {
		if releaseMs <= 0 || math.IsNaN(releaseMs) || math.IsInf(releaseMs, 0) {
			return fmt.Errorf("compressor release must be > 0 and finite: %f", releaseMs)
		}

		c.releaseMs = releaseMs

		return nil
	}
}

// NewCompressor creates a compressor with practical defaults.
func NewCompressor(sampleRate float64, opts ...CompressorOption) (*Compressor, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("compressor sample rate must be > 0 and finite: %f", sampleRate)
	}

	c := &Compressor{
		sampleRate: sampleRate,
		threshold:  defaultCompressorThreshold,
		ratio:      defaultCompressorRatio,
		attackMs:   defaultCompressorAttackMs,
		releaseMs:  defaultCompressorReleaseMs,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.attackCoeff = smoothingCoeff(c.attackMs, sampleRate)
	c.releaseCoeff = smoothingCoeff(c.releaseMs, sampleRate)
	c.gain = 1

	return c, nil
}

// ProcessSample compresses one sample and returns the result.
func (c *Compressor) ProcessSample(input float64) float64 {
	level := math.Abs(input)

	if level > c.threshold {
		target := c.threshold + (level-c.threshold)/c.ratio
		c.gain = c.attackCoeff*(c.gain-target) + target
	} else {
		c.gain = c.releaseCoeff*(c.gain-1) + 1
	}

	return input * c.gain
}

// ProcessInPlace compresses buf in place.
func (c *Compressor) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = c.ProcessSample(buf[i])
	}
}

// Reset returns the smoothed gain to unity.
func (c *Compressor) Reset() {
	c.gain = 1
}

// GainValue returns the current smoothed gain.
func (c *Compressor) GainValue() float64 { return c.gain }

// SampleRate returns the sample rate in Hz.
func (c *Compressor) SampleRate() float64 { return c.sampleRate }

// Threshold returns the linear threshold level.
func (c *Compressor) Threshold() float64 { return c.threshold }

// Ratio returns the compression ratio.
func (c *Compressor) Ratio() float64 { return c.ratio }

// AttackMs returns the attack time constant in milliseconds.
func (c *Compressor) AttackMs() float64 { return c.attackMs }

// ReleaseMs returns the release time constant in milliseconds.
func (c *Compressor) ReleaseMs() float64 { return c.releaseMs }

func smoothingCoeff(ms, sampleRate float64) float64 {
	return math.Exp(-1 / (ms * 0.001 * sampleRate))
}
