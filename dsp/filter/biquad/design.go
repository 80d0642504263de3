package biquad

import (
	"fmt"
	"math"
)

// validateCommon checks the parameters shared by every designer.
func validateCommon(sampleRate, freqHz float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("biquad sample rate must be > 0 and finite: %f", sampleRate)
	}

	nyquist := sampleRate / 2
	if freqHz <= 0 || freqHz >= nyquist || math.IsNaN(freqHz) {
		return fmt.Errorf("biquad frequency must be in (0, %f): %f", nyquist, freqHz)
	}

	return nil
}

func validateQ(q float64) error {
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return fmt.Errorf("biquad Q must be > 0 and finite: %f", q)
	}

	return nil
}

func validateSlope(slope float64) error {
	if slope <= 0 || math.IsNaN(slope) || math.IsInf(slope, 0) {
		return fmt.Errorf("biquad shelf slope must be > 0 and finite: %f", slope)
	}

	return nil
}

func validateGain(gainDB float64) error {
	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		return fmt.Errorf("biquad gain must be finite: %f", gainDB)
	}

	return nil
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// Lowpass designs a second-order lowpass response (RBJ cookbook).
func Lowpass(sampleRate, cutoffHz, q float64) (Coefficients, error) {
	if err := validateCommon(sampleRate, cutoffHz); err != nil {
		return Coefficients{}, err
	}

	if err := validateQ(q); err != nil {
		return Coefficients{}, err
	}

	omega := 2 * math.Pi * cutoffHz / sampleRate
	sinW := math.Sin(omega)
	cosW := math.Cos(omega)
	alpha := sinW / (2 * q)

	b0 := (1 - cosW) / 2
	b1 := 1 - cosW
	b2 := (1 - cosW) / 2
	a0 := 1 + alpha
	a1 := -2 * cosW
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2), nil
}

// Highpass designs a second-order highpass response (RBJ cookbook).
func Highpass(sampleRate, cutoffHz, q float64) (Coefficients, error) {
	if err := validateCommon(sampleRate, cutoffHz); err != nil {
		return Coefficients{}, err
	}

	if err := validateQ(q); err != nil {
		return Coefficients{}, err
	}

	omega := 2 * math.Pi * cutoffHz / sampleRate
	sinW := math.Sin(omega)
	cosW := math.Cos(omega)
	alpha := sinW / (2 * q)

	b0 := (1 + cosW) / 2
	b1 := -(1 + cosW)
	b2 := (1 + cosW) / 2
	a0 := 1 + alpha
	a1 := -2 * cosW
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2), nil
}

// LowShelf designs a low-shelf response with the given gain and slope S.
func LowShelf(sampleRate, cornerHz, gainDB, slope float64) (Coefficients, error) {
	if err := validateCommon(sampleRate, cornerHz); err != nil {
		return Coefficients{}, err
	}

	if err := validateSlope(slope); err != nil {
		return Coefficients{}, err
	}

	if err := validateGain(gainDB); err != nil {
		return Coefficients{}, err
	}

	a := math.Pow(10, gainDB/40)
	omega := 2 * math.Pi * cornerHz / sampleRate
	sinW := math.Sin(omega)
	cosW := math.Cos(omega)
	alpha := sinW / 2 * math.Sqrt((a+1/a)*(1/slope-1)+2)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) - (a-1)*cosW + beta)
	b1 := 2 * a * ((a - 1) - (a+1)*cosW)
	b2 := a * ((a + 1) - (a-1)*cosW - beta)
	a0 := (a + 1) + (a-1)*cosW + beta
	a1 := -2 * ((a - 1) + (a+1)*cosW)
	a2 := (a + 1) + (a-1)*cosW - beta

	return normalize(b0, b1, b2, a0, a1, a2), nil
}

// HighShelf designs a high-shelf response with the given gain and slope S.
func HighShelf(sampleRate, cornerHz, gainDB, slope float64) (Coefficients, error) {
	if err := validateCommon(sampleRate, cornerHz); err != nil {
		return Coefficients{}, err
	}

	if err := validateSlope(slope); err != nil {
		return Coefficients{}, err
	}

	if err := validateGain(gainDB); err != nil {
		return Coefficients{}, err
	}

	a := math.Pow(10, gainDB/40)
	omega := 2 * math.Pi * cornerHz / sampleRate
	sinW := math.Sin(omega)
	cosW := math.Cos(omega)
	alpha := sinW / 2 * math.Sqrt((a+1/a)*(1/slope-1)+2)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) + (a-1)*cosW + beta)
	b1 := -2 * a * ((a - 1) + (a+1)*cosW)
	b2 := a * ((a + 1) + (a-1)*cosW - beta)
	a0 := (a + 1) - (a-1)*cosW + beta
	a1 := 2 * ((a - 1) - (a+1)*cosW)
	a2 := (a + 1) - (a-1)*cosW - beta

	return normalize(b0, b1, b2, a0, a1, a2), nil
}

// PeakingEQ designs a peaking (bell) response. The boost or cut A only
// scales the numerator and denominator alpha terms; skirt frequencies stay
// at unity gain.
func PeakingEQ(sampleRate, centerHz, q, gainDB float64) (Coefficients, error) {
	if err := validateCommon(sampleRate, centerHz); err != nil {
		return Coefficients{}, err
	}

	if err := validateQ(q); err != nil {
		return Coefficients{}, err
	}

	if err := validateGain(gainDB); err != nil {
		return Coefficients{}, err
	}

	a := math.Pow(10, gainDB/40)
	omega := 2 * math.Pi * centerHz / sampleRate
	sinW := math.Sin(omega)
	cosW := math.Cos(omega)
	alpha := sinW / (2 * q)

	b0 := 1 + alpha*a
	b1 := -2 * cosW
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cosW
	a2 := 1 - alpha/a

	return normalize(b0, b1, b2, a0, a1, a2), nil
}

// NewLowpass designs and returns a ready-to-run lowpass Section.
func NewLowpass(sampleRate, cutoffHz, q float64) (*Section, error) {
	c, err := Lowpass(sampleRate, cutoffHz, q)
	if err != nil {
		return nil, err
	}

	return NewSection(c), nil
}

// NewHighpass designs and returns a ready-to-run highpass Section.
func NewHighpass(sampleRate, cutoffHz, q float64) (*Section, error) {
	c, err := Highpass(sampleRate, cutoffHz, q)
	if err != nil {
		return nil, err
	}

	return NewSection(c), nil
}

// NewLowShelf designs and returns a ready-to-run low-shelf Section.
func NewLowShelf(sampleRate, cornerHz, gainDB, slope float64) (*Section, error) {
	c, err := LowShelf(sampleRate, cornerHz, gainDB, slope)
	if err != nil {
		return nil, err
	}

	return NewSection(c), nil
}

// NewHighShelf designs and returns a ready-to-run high-shelf Section.
func NewHighShelf(sampleRate, cornerHz, gainDB, slope float64) (*Section, error) {
	c, err := HighShelf(sampleRate, cornerHz, gainDB, slope)
	if err != nil {
		return nil, err
	}

	return NewSection(c), nil
}

// NewPeakingEQ designs and returns a ready-to-run peaking Section.
func NewPeakingEQ(sampleRate, centerHz, q, gainDB float64) (*Section, error) {
	c, err := PeakingEQ(sampleRate, centerHz, q, gainDB)
	if err != nil {
		return nil, err
	}

	return NewSection(c), nil
}
