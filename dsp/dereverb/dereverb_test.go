package dereverb

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-audiofx/internal/testutil"
)

func TestPipeline_FirstSampleFollowsRecurrence(t *testing.T) {
	p, err := New(44100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// y[0] = alpha*x[0]; the quiet residual is then attenuated.
	filtered := p.Alpha() * 1.0

	want := filtered
	if math.Abs(filtered) < p.Threshold() {
		want *= p.Attenuation()
	}

	testutil.RequireNearlyEqual(t, p.ProcessSample(1.0), want, 1e-15)
}

func TestPipeline_RejectsDC(t *testing.T) {
	p, err := New(44100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	buf := testutil.Constant(0.8, 2000)
	p.ProcessInPlace(buf)

	if got := math.Abs(buf[len(buf)-1]); got > 1e-6 {
		t.Errorf("DC residual after high-pass = %v", got)
	}
}

func TestPipeline_ZeroThresholdDisablesSuppression(t *testing.T) {
	p, err := New(1000, WithThreshold(0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	input := testutil.Noise(8, 0.5, 64)
	got := p.Process(input)

	// Replay the bare high-pass recurrence.
	alpha := p.Alpha()
	want := make([]float64, len(input))
	prevIn, prevOut := 0.0, 0.0

	for i, x := range input {
		prevOut = alpha * (prevOut + x - prevIn)
		prevIn = x
		want[i] = prevOut
	}

	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestPipeline_AttenuatesQuietResiduals(t *testing.T) {
	withSuppression, err := New(44100, WithThreshold(10))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	withoutSuppression, err := New(44100, WithThreshold(0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	input := testutil.Sine(440, 44100, 0.5, 256)

	a := withSuppression.Process(input)
	b := withoutSuppression.Process(input)

	// An unreachable threshold attenuates every sample by the same factor.
	for i := range a {
		testutil.RequireNearlyEqual(t, a[i], b[i]*withSuppression.Attenuation(), 1e-12)
	}
}

func TestPipeline_ProcessMatchesInPlace(t *testing.T) {
	p1, err := New(8000, WithCutoffHz(200))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p2, err := New(8000, WithCutoffHz(200))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	input := testutil.Noise(15, 0.9, 512)

	got := p1.Process(input)

	inPlace := make([]float64, len(input))
	copy(inPlace, input)
	p2.ProcessInPlace(inPlace)

	testutil.RequireSliceNearlyEqual(t, got, inPlace, 0)
}

func TestPipeline_ResetClearsState(t *testing.T) {
	p, err := New(44100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := p.ProcessSample(0.7)

	p.ProcessSample(-0.3)
	p.Reset()

	if got := p.ProcessSample(0.7); got != first {
		t.Errorf("first sample after Reset = %v, want %v", got, first)
	}
}

func TestPipeline_InvalidParameters(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Error("zero sample rate accepted")
	}

	if _, err := New(44100, WithCutoffHz(0)); err == nil {
		t.Error("zero cutoff accepted")
	}

	if _, err := New(44100, WithThreshold(-1)); err == nil {
		t.Error("negative threshold accepted")
	}

	if _, err := New(44100, WithAttenuation(2)); err == nil {
		t.Error("attenuation above 1 accepted")
	}
}
