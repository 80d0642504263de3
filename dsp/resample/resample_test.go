package resample

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audiofx/internal/testutil"
)

func TestLinear_DoubleRate(t *testing.T) {
	got, err := Linear([]float64{0, 1, 2, 3}, 2, 4)
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}

	// The last output index falls past the final input sample and clamps to it.
	want := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestLinear_HalfRate(t *testing.T) {
	got, err := Linear([]float64{0, 1, 2, 3}, 4, 2)
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 2}, 1e-12)
}

func TestLinear_IdentityRatio(t *testing.T) {
	input := testutil.Noise(5, 0.9, 100)

	got, err := Linear(input, 44100, 44100)
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, input, 1e-12)
}

func TestLinear_OutputLengthRounds(t *testing.T) {
	input := make([]float64, 100)

	got, err := Linear(input, 44100, 48000)
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}

	want := int(math.Round(100 * 48000.0 / 44100.0))
	if len(got) != want {
		t.Errorf("output length = %d, want %d", len(got), want)
	}
}

func TestLinear_PreservesSineShape(t *testing.T) {
	input := testutil.Sine(100, 8000, 0.8, 800)

	got, err := Linear(input, 8000, 16000)
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}

	// Even-indexed output samples land exactly on input samples.
	for i := 0; i < len(input); i++ {
		if math.Abs(got[2*i]-input[i]) > 1e-9 {
			t.Fatalf("sample %d: %v, want %v", 2*i, got[2*i], input[i])
		}
	}
}

func TestLinear_EmptyInput(t *testing.T) {
	got, err := Linear(nil, 44100, 48000)
	if err != nil {
		t.Fatalf("Linear: %v", err)
	}

	if len(got) != 0 {
		t.Errorf("got %d samples, want 0", len(got))
	}
}

func TestLinear_InvalidRates(t *testing.T) {
	if _, err := Linear([]float64{1}, 0, 44100); err == nil {
		t.Error("zero original rate accepted")
	}

	if _, err := Linear([]float64{1}, 44100, -1); err == nil {
		t.Error("negative target rate accepted")
	}

	if _, err := Linear([]float64{1}, math.NaN(), 44100); err == nil {
		t.Error("NaN original rate accepted")
	}
}
