package spectrum

import (
	"fmt"
	"math"
)

// DefaultEnvelopeAlpha is the conventional smoothing factor for Envelope.
const DefaultEnvelopeAlpha = 0.1

// Envelope rectifies samples and smooths the result with a one-pole
// follower: env[i] = alpha*|x[i]| + (1-alpha)*env[i-1], starting from zero.
// Larger alpha values track the signal more closely.
func Envelope(samples []float64, alpha float64) ([]float64, error) {
	if alpha <= 0 || alpha > 1 || math.IsNaN(alpha) {
		return nil, fmt.Errorf("envelope alpha must be in (0, 1]: %f", alpha)
	}

	out := make([]float64, len(samples))
	previous := 0.0

	for i, v := range samples {
		previous = alpha*math.Abs(v) + (1-alpha)*previous
		out[i] = previous
	}

	return out, nil
}
