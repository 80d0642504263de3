package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-audiofx/internal/testutil"
)

func TestDirect_KnownResult(t *testing.T) {
	got, err := Direct([]float64{1, 2, 3, 4, 5}, []float64{1, 0, -1})
	if err != nil {
		t.Fatalf("Direct: %v", err)
	}

	if len(got) != 7 {
		t.Fatalf("output length = %d, want 7", len(got))
	}

	want := []float64{1, 2, 2, 2, 2, -4, -5}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestDirect_ImpulseIsIdentity(t *testing.T) {
	signal := testutil.Noise(21, 0.9, 64)

	got, err := Direct(signal, []float64{1})
	if err != nil {
		t.Fatalf("Direct: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got, signal, 1e-12)
}

func TestDirect_Commutative(t *testing.T) {
	a := testutil.Noise(1, 1, 20)
	b := testutil.Noise(2, 1, 9)

	ab, err := Direct(a, b)
	if err != nil {
		t.Fatalf("Direct: %v", err)
	}

	ba, err := Direct(b, a)
	if err != nil {
		t.Fatalf("Direct: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, ab, ba, 1e-12)
}

func TestDirect_BlockedMatchesScalar(t *testing.T) {
	signal := testutil.Noise(3, 1, 100)
	kernel := testutil.Noise(4, 1, 16)

	blocked := make([]float64, len(signal)+len(kernel)-1)
	DirectTo(blocked, signal, kernel)

	scalar := make([]float64, len(blocked))
	directToScalar(scalar, signal, kernel)

	testutil.RequireSliceNearlyEqual(t, blocked, scalar, 1e-12)
}

func TestDirect_EmptyInputs(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got %v, want ErrEmptyInput", err)
	}

	if _, err := Direct([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("got %v, want ErrEmptyKernel", err)
	}
}
