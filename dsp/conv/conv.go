// Package conv provides time-domain linear convolution.
package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-audiofx/dsp/core"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// Direct performs direct time-domain linear convolution of signal and
// kernel. Returns a new slice of length len(signal) + len(kernel) - 1.
//
// This is an O(N*M) algorithm suitable for short kernels.
func Direct(signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(signal)+len(kernel)-1)
	DirectTo(result, signal, kernel)

	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated
// destination. dst must have length len(signal) + len(kernel) - 1.
func DirectTo(dst, signal, kernel []float64) {
	core.Zero(dst)

	// Vectorized accumulation pays off once the inner loop spans a block.
	const simdThreshold = 4
	if len(kernel) >= simdThreshold {
		directToBlocked(dst, signal, kernel)
	} else {
		directToScalar(dst, signal, kernel)
	}
}

func directToScalar(dst, signal, kernel []float64) {
	for i := range signal {
		for j := range kernel {
			dst[i+j] += signal[i] * kernel[j]
		}
	}
}

func directToBlocked(dst, signal, kernel []float64) {
	m := len(kernel)
	temp := make([]float64, m)

	for i := range signal {
		vecmath.ScaleBlock(temp, kernel, signal[i])
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}
