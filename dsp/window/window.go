// Package window provides cosine-sum window functions for spectral framing.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeHamming Type = iota
	TypeHann
	TypeBlackman
)

// String returns the window name.
func (t Type) String() string {
	switch t {
	case TypeHamming:
		return "Hamming"
	case TypeHann:
		return "Hann"
	case TypeBlackman:
		return "Blackman"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func coefficient(t Type, i, length int) (float64, error) {
	// Symmetric form: the first and last samples sit at the window edges.
	x := 2 * math.Pi * float64(i) / float64(length-1)

	switch t {
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(x), nil
	case TypeHann:
		return 0.5 * (1 - math.Cos(x)), nil
	case TypeBlackman:
		return 0.42 - 0.5*math.Cos(x) + 0.08*math.Cos(2*x), nil
	default:
		return 0, fmt.Errorf("unknown window type: %d", int(t))
	}
}

// Generate returns window coefficients of the given length. Lengths below
// two have no interior to shape and yield all-ones coefficients.
func Generate(t Type, length int) ([]float64, error) {
	if length < 0 {
		return nil, fmt.Errorf("window length must be >= 0: %d", length)
	}

	out := make([]float64, length)

	if length < 2 {
		for i := range out {
			out[i] = 1
		}

		return out, nil
	}

	for i := range out {
		c, err := coefficient(t, i, length)
		if err != nil {
			return nil, err
		}

		out[i] = c
	}

	return out, nil
}

// Apply multiplies buf in place by the selected window. Buffers shorter
// than two samples are left unchanged.
func Apply(t Type, buf []float64) error {
	if len(buf) < 2 {
		if _, err := coefficient(t, 0, 2); err != nil {
			return err
		}

		return nil
	}

	coeffs, err := Generate(t, len(buf))
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}
