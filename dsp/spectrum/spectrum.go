package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// FFT transforms real samples into complex spectrum bins. The output has
// the same length as the input.
func FFT(samples []float64) ([]complex128, error) {
	n := len(samples)
	if n == 0 {
		return nil, nil
	}

	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)

	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
		}

		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
		}

		return out, nil
	}

	dft(out, in, false)

	return out, nil
}

// IFFT transforms complex spectrum bins back into real samples. The output
// is normalized by the length, so IFFT(FFT(x)) returns x.
func IFFT(bins []complex128) ([]float64, error) {
	n := len(bins)
	if n == 0 {
		return nil, nil
	}

	out := make([]complex128, n)

	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
		}

		if err := plan.Inverse(out, bins); err != nil {
			return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
		}
	} else {
		dft(out, bins, true)

		scale := 1 / float64(n)
		for i := range out {
			out[i] = complex(real(out[i])*scale, imag(out[i])*scale)
		}
	}

	samples := make([]float64, n)
	for i, c := range out {
		samples[i] = real(c)
	}

	return samples, nil
}

// Magnitude returns |X[k]| for each spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im := splitParts(in)
	vecmath.Magnitude(out, re, im)

	return out
}

// Power returns |X[k]|^2 for each spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im := splitParts(in)
	vecmath.Power(out, re, im)

	return out
}

func splitParts(in []complex128) (re, im []float64) {
	re = make([]float64, len(in))
	im = make([]float64, len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// dft evaluates the transform directly. The index product is reduced
// modulo n before computing the angle to keep the twiddles accurate for
// long inputs.
func dft(out, in []complex128, inverse bool) {
	n := len(in)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for k := range out {
		var sumRe, sumIm float64

		for j, c := range in {
			angle := sign * 2 * math.Pi * float64((j*k)%n) / float64(n)
			cos, sin := math.Cos(angle), math.Sin(angle)

			sumRe += real(c)*cos - imag(c)*sin
			sumIm += real(c)*sin + imag(c)*cos
		}

		out[k] = complex(sumRe, sumIm)
	}
}
