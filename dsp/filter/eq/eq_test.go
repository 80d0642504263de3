package eq

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audiofx/internal/testutil"
)

func TestEqualizer_ZeroBandsIsPassThrough(t *testing.T) {
	e, err := New(44100, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	input := testutil.Noise(3, 1, 128)
	got := make([]float64, len(input))
	copy(got, input)

	e.ProcessInPlace(got)
	testutil.RequireSliceNearlyEqual(t, got, input, 0)
}

func TestEqualizer_ZeroGainBandsAreTransparent(t *testing.T) {
	e, err := New(44100, []Band{
		{FrequencyHz: 100, GainDB: 0, Q: 1},
		{FrequencyHz: 1000, GainDB: 0, Q: 1},
		{FrequencyHz: 10000, GainDB: 0, Q: 1},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	input := testutil.Sine(440, 44100, 0.5, 512)
	got := make([]float64, len(input))
	copy(got, input)

	e.ProcessInPlace(got)
	testutil.RequireSliceNearlyEqual(t, got, input, 1e-9)
}

func TestEqualizer_NonZeroGainBandAltersSignal(t *testing.T) {
	const sampleRate = 44100

	e, err := New(sampleRate, []Band{{FrequencyHz: 1000, GainDB: 12, Q: 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	input := testutil.Sine(1000, sampleRate, 0.25, 2048)
	got := make([]float64, len(input))
	copy(got, input)

	e.ProcessInPlace(got)
	testutil.RequireFinite(t, got)

	var maxDiff float64
	for i := range got {
		if d := math.Abs(got[i] - input[i]); d > maxDiff {
			maxDiff = d
		}
	}

	if maxDiff < 1e-3 {
		t.Errorf("boosted band left the signal unchanged (max diff %v)", maxDiff)
	}
}

func TestEqualizer_DCUnityThroughCascade(t *testing.T) {
	e, err := New(44100, []Band{
		{FrequencyHz: 250, GainDB: 6, Q: 1},
		{FrequencyHz: 4000, GainDB: -9, Q: 2},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var y float64
	for range 200000 {
		y = e.ProcessSample(1.0)
	}

	// Peaking bands are unity at 0 Hz regardless of gain.
	if math.Abs(y-1.0) > 1e-6 {
		t.Errorf("cascade DC steady state = %v, want 1.0", y)
	}
}

func TestEqualizer_ProcessSampleMatchesInPlace(t *testing.T) {
	bands := []Band{
		{FrequencyHz: 200, GainDB: 6, Q: 0.7},
		{FrequencyHz: 2000, GainDB: -3, Q: 2},
	}

	a, err := New(48000, bands)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	b, err := New(48000, bands)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	input := testutil.Noise(11, 0.8, 256)

	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = a.ProcessSample(x)
	}

	got := make([]float64, len(input))
	copy(got, input)
	b.ProcessInPlace(got)

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestEqualizer_SetBandGainPreservesState(t *testing.T) {
	e, err := New(48000, []Band{{FrequencyHz: 1000, GainDB: 6, Q: 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	warm := testutil.Sine(1000, 48000, 0.5, 64)
	e.ProcessInPlace(warm)

	// Changing gain mid-stream must not produce a large discontinuity.
	if err := e.SetBandGain(0, -6); err != nil {
		t.Fatalf("SetBandGain: %v", err)
	}

	next := e.ProcessSample(warm[len(warm)-1])
	if math.Abs(next) > 2 {
		t.Errorf("discontinuity after gain change: %v", next)
	}

	if got := e.Bands()[0].GainDB; got != -6 {
		t.Errorf("band gain = %v, want -6", got)
	}
}

func TestEqualizer_InvalidInputs(t *testing.T) {
	if _, err := New(0, nil); err == nil {
		t.Error("zero sample rate accepted")
	}

	if _, err := New(44100, []Band{{FrequencyHz: 30000, GainDB: 0, Q: 1}}); err == nil {
		t.Error("band beyond nyquist accepted")
	}

	e, err := New(44100, []Band{{FrequencyHz: 1000, GainDB: 0, Q: 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := e.SetBandGain(5, 0); err == nil {
		t.Error("out-of-range band index accepted")
	}
}
