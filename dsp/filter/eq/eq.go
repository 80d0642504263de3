// Package eq provides a multi-band parametric equalizer: one peaking biquad
// per band, cascaded in the caller-supplied order.
//
// Cascaded LTI sections commute only in exact arithmetic; under floating
// point the band order changes intermediate headroom and rounding, so the
// order given to [New] is preserved exactly and results are order-sensitive
// at the last few bits.
package eq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-audiofx/dsp/filter/biquad"
)

// Band describes one parametric band: a peaking filter at FrequencyHz with
// the given boost/cut and bandwidth. Band is a plain value; the processing
// state lives in the Equalizer that was built from it.
type Band struct {
	FrequencyHz float64
	GainDB      float64
	Q           float64
}

// Equalizer is an ordered cascade of peaking biquad sections.
type Equalizer struct {
	sampleRate float64
	bands      []Band
	sections   []biquad.Section
}

// New creates an equalizer with one peaking section per band. Zero bands is
// valid and yields a pass-through.
func New(sampleRate float64, bands []Band) (*Equalizer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("eq sample rate must be > 0 and finite: %f", sampleRate)
	}

	e := &Equalizer{
		sampleRate: sampleRate,
		bands:      make([]Band, len(bands)),
		sections:   make([]biquad.Section, len(bands)),
	}
	copy(e.bands, bands)

	for i, b := range bands {
		c, err := biquad.PeakingEQ(sampleRate, b.FrequencyHz, b.Q, b.GainDB)
		if err != nil {
			return nil, fmt.Errorf("eq band %d: %w", i, err)
		}

		e.sections[i].Coefficients = c
	}

	return e, nil
}

// ProcessSample cascades one sample through all bands in order.
func (e *Equalizer) ProcessSample(x float64) float64 {
	for i := range e.sections {
		x = e.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessInPlace applies the full cascade to buf in place.
func (e *Equalizer) ProcessInPlace(buf []float64) {
	for i := range e.sections {
		e.sections[i].ProcessBlock(buf)
	}
}

// SetBandGain re-designs band i with a new gain. The band's delay registers
// are preserved, so the change is continuous on a live stream.
func (e *Equalizer) SetBandGain(i int, gainDB float64) error {
	if i < 0 || i >= len(e.bands) {
		return fmt.Errorf("eq band index out of range: %d", i)
	}

	b := e.bands[i]

	c, err := biquad.PeakingEQ(e.sampleRate, b.FrequencyHz, b.Q, gainDB)
	if err != nil {
		return err
	}

	e.bands[i].GainDB = gainDB
	e.sections[i].SetCoefficients(c)

	return nil
}

// Reset clears the delay registers of every band.
func (e *Equalizer) Reset() {
	for i := range e.sections {
		e.sections[i].Reset()
	}
}

// NumBands returns the number of bands in the cascade.
func (e *Equalizer) NumBands() int { return len(e.bands) }

// Bands returns a copy of the band configuration in cascade order.
func (e *Equalizer) Bands() []Band {
	out := make([]Band, len(e.bands))
	copy(out, e.bands)

	return out
}

// SampleRate returns the sample rate the cascade was designed for.
func (e *Equalizer) SampleRate() float64 { return e.sampleRate }
