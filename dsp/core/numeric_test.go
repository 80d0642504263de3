package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name           string
		value, lo, hi  float64
		want           float64
	}{
		{"inside", 0.5, 0, 1, 0.5},
		{"below", -2, 0, 1, 0},
		{"above", 3, 0, 1, 1},
		{"swapped bounds", 0.5, 1, 0, 0.5},
		{"at lower edge", 0, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Error("values within eps reported unequal")
	}

	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Error("clearly different values reported equal")
	}

	if !NearlyEqual(0, 0, 0) {
		t.Error("zero should equal zero with default epsilon")
	}
}

func TestDBConversionRoundTrip(t *testing.T) {
	for _, db := range []float64{-60, -6, 0, 6, 20} {
		lin := DBToLinear(db)

		back := LinearToDB(lin)
		if math.Abs(back-db) > 1e-9 {
			t.Errorf("round trip %v dB: got %v", db, back)
		}
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Error("LinearToDB(0) should be -Inf")
	}

	if !math.IsNaN(LinearToDB(-1)) {
		t.Error("LinearToDB(-1) should be NaN")
	}
}

func TestFlushDenormals(t *testing.T) {
	if FlushDenormals(1e-40) != 0 {
		t.Error("denormal-range value not flushed")
	}

	if FlushDenormals(0.5) != 0.5 {
		t.Error("normal value modified")
	}
}

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 4, 16)

	grown := EnsureLen(buf, 10)
	if len(grown) != 10 {
		t.Fatalf("len = %d, want 10", len(grown))
	}

	fresh := EnsureLen(buf, 32)
	if len(fresh) != 32 {
		t.Fatalf("len = %d, want 32", len(fresh))
	}

	if got := EnsureLen(buf, -1); len(got) != 0 {
		t.Fatalf("negative length should yield empty slice, got len %d", len(got))
	}
}
