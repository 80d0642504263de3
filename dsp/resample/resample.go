// Package resample converts signals between sample rates.
package resample

import (
	"fmt"
	"math"
)

// Linear resamples samples from origRate to targetRate using linear
// interpolation. The output length is round(len * targetRate/origRate) and
// the upper interpolation index is clamped to the last input sample. Empty
// input yields empty output.
func Linear(samples []float64, origRate, targetRate float64) ([]float64, error) {
	if origRate <= 0 || math.IsNaN(origRate) || math.IsInf(origRate, 0) {
		return nil, fmt.Errorf("original rate must be > 0 and finite: %f", origRate)
	}

	if targetRate <= 0 || math.IsNaN(targetRate) || math.IsInf(targetRate, 0) {
		return nil, fmt.Errorf("target rate must be > 0 and finite: %f", targetRate)
	}

	if len(samples) == 0 {
		return nil, nil
	}

	ratio := targetRate / origRate
	newLength := int(math.Round(float64(len(samples)) * ratio))

	out := make([]float64, newLength)

	for i := range out {
		srcIndex := float64(i) / ratio

		floor := int(srcIndex)
		if floor > len(samples)-1 {
			floor = len(samples) - 1
		}

		ceil := floor + 1
		if ceil > len(samples)-1 {
			ceil = len(samples) - 1
		}

		weight := srcIndex - float64(floor)
		out[i] = samples[floor]*(1-weight) + samples[ceil]*weight
	}

	return out, nil
}
