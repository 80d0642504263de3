// Package signal provides stateless whole-buffer transforms and
// deterministic test signal generation.
package signal

import (
	"fmt"
	"math"
)

// Normalize scales samples in place so the largest absolute value becomes
// one. All-zero and empty buffers are left unchanged.
func Normalize(samples []float64) {
	maxAbs := 0.0
	for _, v := range samples {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}

	if maxAbs == 0 {
		return
	}

	scale := 1 / maxAbs
	for i := range samples {
		samples[i] *= scale
	}
}

// RemoveDCOffset subtracts the mean from samples in place. Empty buffers
// are left unchanged.
func RemoveDCOffset(samples []float64) {
	if len(samples) == 0 {
		return
	}

	var sum float64
	for _, v := range samples {
		sum += v
	}

	mean := sum / float64(len(samples))
	for i := range samples {
		samples[i] -= mean
	}
}

// PanStereo spreads a mono signal across two channels with constant-power
// gains. Pan 0 is hard right, 0.5 is center, 1 is hard left.
func PanStereo(samples []float64, pan float64) (left, right []float64, err error) {
	if pan < 0 || pan > 1 || math.IsNaN(pan) {
		return nil, nil, fmt.Errorf("pan must be in [0, 1]: %f", pan)
	}

	leftGain := math.Cos((1 - pan) * math.Pi / 2)
	rightGain := math.Cos(pan * math.Pi / 2)

	left = make([]float64, len(samples))
	right = make([]float64, len(samples))

	for i, v := range samples {
		left[i] = v * leftGain
		right[i] = v * rightGain
	}

	return left, right, nil
}

// MidSideEncode converts a left/right pair into mid/side form:
// mid = (L+R)/2, side = (L-R)/2.
func MidSideEncode(left, right []float64) (mid, side []float64, err error) {
	if len(left) != len(right) {
		return nil, nil, fmt.Errorf("channel lengths differ: %d vs %d", len(left), len(right))
	}

	mid = make([]float64, len(left))
	side = make([]float64, len(left))

	for i := range left {
		mid[i] = (left[i] + right[i]) * 0.5
		side[i] = (left[i] - right[i]) * 0.5
	}

	return mid, side, nil
}

// MidSideDecode converts a mid/side pair back into left/right form:
// L = M+S, R = M-S. It is the exact inverse of MidSideEncode up to
// floating-point rounding.
func MidSideDecode(mid, side []float64) (left, right []float64, err error) {
	if len(mid) != len(side) {
		return nil, nil, fmt.Errorf("channel lengths differ: %d vs %d", len(mid), len(side))
	}

	left = make([]float64, len(mid))
	right = make([]float64, len(mid))

	for i := range mid {
		left[i] = mid[i] + side[i]
		right[i] = mid[i] - side[i]
	}

	return left, right, nil
}
