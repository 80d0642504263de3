package dynamics

import (
	"fmt"
	"math"
)

const (
	defaultGateThreshold = 0.05
	defaultGateAttackMs  = 5.0
	defaultGateReleaseMs = 50.0
)

// Gate silences the signal while the instantaneous level stays below the
// threshold. Below the threshold the gain decays toward zero with the
// attack coefficient; at or above it the gain recovers toward unity with
// the release coefficient.
type Gate struct {
	sampleRate float64
	threshold  float64
	attackMs   float64
	releaseMs  float64

	attackCoeff  float64
	releaseCoeff float64
	gain         float64
}

// GateOption mutates gate construction parameters.
type GateOption func(*Gate) error

// WithGateThreshold sets the linear level below which the gate closes.
func WithGateThreshold(threshold float64) GateOption {
	return func(g *Gate) error {
		if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
			return fmt.Errorf("gate threshold must be >= 0 and finite: %f", threshold)
		}

		g.threshold = threshold

		return nil
	}
}

// WithGateAttackMs sets the closing time constant in milliseconds.
func WithGateAttackMs(attackMs float64) GateOption {
	return func(g *Gate) error {
		if attackMs <= 0 || math.IsNaN(attackMs) || math.IsInf(attackMs, 0) {
			return fmt.Errorf("gate attack must be > 0 and finite: %f", attackMs)
		}

		g.attackMs = attackMs

		return nil
	}
}

// WithGateReleaseMs sets the opening time constant in milliseconds.
func WithGateReleaseMs(releaseMs float64) GateOption {
	return func(g *Gate) error {
		if releaseMs <= 0 || math.IsNaN(releaseMs) || math.IsInf(releaseMs, 0) {
			return fmt.Errorf("gate release must be > 0 and finite: %f", releaseMs)
		}

		g.releaseMs = releaseMs

		return nil
	}
}

// NewGate creates a noise gate with practical defaults.
func NewGate(sampleRate float64, opts ...GateOption) (*Gate, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("gate sample rate must be > 0 and finite: %f", sampleRate)
	}

	g := &Gate{
		sampleRate: sampleRate,
		threshold:  defaultGateThreshold,
		attackMs:   defaultGateAttackMs,
		releaseMs:  defaultGateReleaseMs,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(g); err != nil {
			return nil, err
		}
	}

	g.attackCoeff = smoothingCoeff(g.attackMs, sampleRate)
	g.releaseCoeff = smoothingCoeff(g.releaseMs, sampleRate)
	g.gain = 1

	return g, nil
}

// ProcessSample gates one sample and returns the result.
func (g *Gate) ProcessSample(input float64) float64 {
	level := math.Abs(input)

	if level < g.threshold {
		g.gain = g.attackCoeff * g.gain
	} else {
		g.gain = g.releaseCoeff*(g.gain-1) + 1
	}

	return input * g.gain
}

// ProcessInPlace gates buf in place.
func (g *Gate) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = g.ProcessSample(buf[i])
	}
}

// Reset returns the smoothed gain to unity.
func (g *Gate) Reset() {
	g.gain = 1
}

// GainValue returns the current smoothed gain.
func (g *Gate) GainValue() float64 { return g.gain }

// SampleRate returns the sample rate in Hz.
func (g *Gate) SampleRate() float64 { return g.sampleRate }

// Threshold returns the linear threshold level.
func (g *Gate) Threshold() float64 { return g.threshold }

// AttackMs returns the closing time constant in milliseconds.
func (g *Gate) AttackMs() float64 { return g.attackMs }

// ReleaseMs returns the opening time constant in milliseconds.
func (g *Gate) ReleaseMs() float64 { return g.releaseMs }
