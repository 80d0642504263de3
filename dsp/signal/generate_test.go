package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audiofx/internal/testutil"
)

func TestGenerator_SinePeriodAndAmplitude(t *testing.T) {
	g, err := NewGenerator(1000)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	// 250 Hz at 1 kHz puts a sample on every quarter period.
	got, err := g.Sine(250, 0.5, 8)
	if err != nil {
		t.Fatalf("Sine: %v", err)
	}

	want := []float64{0, 0.5, 0, -0.5, 0, 0.5, 0, -0.5}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestGenerator_WhiteNoiseDeterministic(t *testing.T) {
	g1, err := NewGenerator(44100, WithSeed(99))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	g2, err := NewGenerator(44100, WithSeed(99))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	a, err := g1.WhiteNoise(0.8, 512)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}

	b, err := g2.WhiteNoise(0.8, 512)
	if err != nil {
		t.Fatalf("WhiteNoise: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, a, b, 0)

	for i, v := range a {
		if math.Abs(v) > 0.8 {
			t.Fatalf("noise sample %d out of range: %v", i, v)
		}
	}
}

func TestGenerator_InvalidArguments(t *testing.T) {
	if _, err := NewGenerator(0); err == nil {
		t.Error("zero sample rate accepted")
	}

	g, err := NewGenerator(44100)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}

	if _, err := g.Sine(440, 1, 0); err == nil {
		t.Error("zero sample count accepted")
	}

	if _, err := g.WhiteNoise(-1, 16); err == nil {
		t.Error("negative amplitude accepted")
	}
}
