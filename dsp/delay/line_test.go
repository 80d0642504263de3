package delay

import "testing"

func TestLine_ReadBeforeWriteIsFullDelay(t *testing.T) {
	l, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	input := []float64{1, 2, 3, 4, 5}
	want := []float64{0, 0, 0, 0, 1}

	for i, x := range input {
		got := l.Read()
		if got != want[i] {
			t.Errorf("sample %d: read %v, want %v", i, got, want[i])
		}

		l.Write(x)
		l.Advance()
	}
}

func TestLine_CursorWraps(t *testing.T) {
	l, err := New(3)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := range 10 {
		if got, want := l.Pos(), i%3; got != want {
			t.Fatalf("step %d: pos %d, want %d", i, got, want)
		}

		l.Advance()
	}
}

func TestLine_TapOffsets(t *testing.T) {
	l, err := New(4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Fill with 1..4, cursor back at 0.
	for _, x := range []float64{1, 2, 3, 4} {
		l.Write(x)
		l.Advance()
	}

	if got := l.Tap(0); got != 1 {
		t.Errorf("Tap(0) = %v, want 1 (cursor slot)", got)
	}

	if got := l.Tap(1); got != 4 {
		t.Errorf("Tap(1) = %v, want 4", got)
	}

	if got := l.Tap(3); got != 2 {
		t.Errorf("Tap(3) = %v, want 2", got)
	}

	// Full-capacity offset aliases to the cursor slot.
	if got := l.Tap(4); got != 1 {
		t.Errorf("Tap(4) = %v, want 1", got)
	}
}

func TestNewDuration_Sizing(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		durationMs float64
		wantLen    int
	}{
		{"250ms at 1kHz", 1000, 250, 250},
		{"29ms at 44.1kHz", 44100, 29, 1279},
		{"rounds half up", 1000, 2.5, 3},
		{"zero rounds to one slot", 44100, 0.001, 1},
		{"zero duration", 44100, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewDuration(tt.sampleRate, tt.durationMs)
			if err != nil {
				t.Fatalf("NewDuration: %v", err)
			}

			if l.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", l.Len(), tt.wantLen)
			}
		})
	}
}

func TestNew_InvalidSize(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Error("zero size accepted")
	}

	if _, err := New(-4); err == nil {
		t.Error("negative size accepted")
	}

	if _, err := NewDuration(0, 10); err == nil {
		t.Error("zero sample rate accepted")
	}

	if _, err := NewDuration(44100, -1); err == nil {
		t.Error("negative duration accepted")
	}
}

func TestLine_Reset(t *testing.T) {
	l, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Write(1)
	l.Advance()
	l.Reset()

	if l.Pos() != 0 {
		t.Errorf("pos after Reset = %d, want 0", l.Pos())
	}

	if l.Read() != 0 || l.Tap(1) != 0 {
		t.Error("buffer not cleared by Reset")
	}
}
