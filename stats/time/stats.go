// Package time computes time-domain signal measurements.
package time

import (
	"math"

	"github.com/cwbudde/algo-audiofx/dsp/core"
)

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMS_dB        float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|max|, |min|)
	Peak_dB       float64
	Energy        float64 // sum of squares
	Power         float64 // energy / length
	ZeroCrossings int
}

// RMS returns the root mean square level of signal. Empty input yields zero.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the largest absolute sample value. Empty input yields zero.
func Peak(signal []float64) float64 {
	peak := 0.0
	for _, x := range signal {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	return peak
}

func emptyStats() Stats {
	return Stats{
		RMS_dB:  math.Inf(-1),
		Peak_dB: math.Inf(-1),
	}
}

// Calculate computes all statistics in a single pass over signal.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return emptyStats()
	}

	var (
		sum           float64
		sumSq         float64
		maxVal        = signal[0]
		maxPos        int
		minVal        = signal[0]
		minPos        int
		zeroCrossings int
	)

	for i, x := range signal {
		sum += x
		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	return Stats{
		Length:        n,
		DC:            sum / nf,
		RMS:           rms,
		RMS_dB:        core.LinearToDB(rms),
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          peak,
		Peak_dB:       core.LinearToDB(peak),
		Energy:        sumSq,
		Power:         sumSq / nf,
		ZeroCrossings: zeroCrossings,
	}
}
