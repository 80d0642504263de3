package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic signals at a fixed sample rate.
type Generator struct {
	sampleRate float64
	seed       int64
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) GeneratorOption {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a signal generator.
func NewGenerator(sampleRate float64, opts ...GeneratorOption) (*Generator, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("generator sample rate must be > 0 and finite: %f", sampleRate)
	}

	g := &Generator{
		sampleRate: sampleRate,
		seed:       1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g, nil
}

// SampleRate returns the sample rate in Hz.
func (g *Generator) SampleRate() float64 { return g.sampleRate }

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}
