package biquad

import (
	"math"
	"testing"
)

func TestSection_ProcessBlockMatchesPerSample(t *testing.T) {
	c, err := Lowpass(48000, 1200, 0.707)
	if err != nil {
		t.Fatalf("Lowpass: %v", err)
	}

	a := NewSection(c)
	b := NewSection(c)

	input := make([]float64, 256)
	for i := range input {
		input[i] = math.Sin(2 * math.Pi * 440 * float64(i) / 48000)
	}

	wantOut := make([]float64, len(input))
	for i, x := range input {
		wantOut[i] = a.ProcessSample(x)
	}

	gotOut := make([]float64, len(input))
	copy(gotOut, input)
	b.ProcessBlock(gotOut)

	for i := range gotOut {
		if gotOut[i] != wantOut[i] {
			t.Fatalf("index %d: block %v != per-sample %v", i, gotOut[i], wantOut[i])
		}
	}
}

func TestSection_LowpassConvergesToDC(t *testing.T) {
	s, err := NewLowpass(44100, 1000, 0.707)
	if err != nil {
		t.Fatalf("NewLowpass: %v", err)
	}

	var y float64
	for range 100000 {
		y = s.ProcessSample(1.0)
	}

	if math.Abs(y-1.0) > 1e-6 {
		t.Errorf("lowpass DC steady state = %v, want 1.0", y)
	}
}

func TestSection_PeakingUnityGainPassesDC(t *testing.T) {
	for _, gainDB := range []float64{0, 6, -6} {
		s, err := NewPeakingEQ(44100, 1000, 1.0, gainDB)
		if err != nil {
			t.Fatalf("NewPeakingEQ: %v", err)
		}

		var y float64
		for range 100000 {
			y = s.ProcessSample(1.0)
		}

		// A peaking filter is unity at the band edges, including 0 Hz.
		if math.Abs(y-1.0) > 1e-6 {
			t.Errorf("peaking(%v dB) DC steady state = %v, want 1.0", gainDB, y)
		}
	}
}

func TestSection_SetCoefficientsPreservesState(t *testing.T) {
	s, err := NewPeakingEQ(48000, 2000, 1.0, 3)
	if err != nil {
		t.Fatalf("NewPeakingEQ: %v", err)
	}

	for i := range 64 {
		s.ProcessSample(math.Sin(float64(i) / 3))
	}

	before := s.State()
	if before == ([2]float64{}) {
		t.Fatal("expected non-zero state after processing")
	}

	c, err := PeakingEQ(48000, 2000, 1.0, -3)
	if err != nil {
		t.Fatalf("PeakingEQ: %v", err)
	}

	s.SetCoefficients(c)

	if s.State() != before {
		t.Errorf("state changed across coefficient update: %v != %v", s.State(), before)
	}
}

func TestSection_ResetClearsState(t *testing.T) {
	s, err := NewHighpass(48000, 200, 0.707)
	if err != nil {
		t.Fatalf("NewHighpass: %v", err)
	}

	s.ProcessSample(1)
	s.ProcessSample(-1)
	s.Reset()

	if s.State() != ([2]float64{}) {
		t.Errorf("state after Reset = %v, want zeros", s.State())
	}
}

func TestSection_StateRoundTrip(t *testing.T) {
	s := NewSection(Coefficients{B0: 1})
	s.SetState([2]float64{0.25, -0.5})

	if got := s.State(); got != ([2]float64{0.25, -0.5}) {
		t.Errorf("State() = %v", got)
	}
}
