package fft

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-radix2/internal/testutil"
)

func TestApplyWindowOnOnes(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 16, 1024} {
		e, err := New(n)
		if err != nil {
			t.Fatal(err)
		}

		buf := testutil.Ones(n)
		if err := e.ApplyWindow(buf); err != nil {
			t.Fatal(err)
		}

		for i := 0; i < n; i++ {
			want := float32(0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n))))
			if buf[2*i] != want || buf[2*i+1] != want {
				t.Fatalf("n=%d sample %d = (%v, %v), want %v", n, i, buf[2*i], buf[2*i+1], want)
			}
		}
	}
}

func TestApplyWindowEdgesAndPeak(t *testing.T) {
	e, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	buf := testutil.Ones(8)
	if err := e.ApplyWindow(buf); err != nil {
		t.Fatal(err)
	}

	if buf[0] != 0 || buf[1] != 0 {
		t.Fatalf("first sample = (%v, %v), want 0", buf[0], buf[1])
	}
	if buf[8] != 1 || buf[9] != 1 {
		t.Fatalf("center sample = (%v, %v), want 1", buf[8], buf[9])
	}
	// Periodic form: symmetric around N/2, not around (N-1)/2.
	if buf[2] != buf[14] {
		t.Fatalf("w[1]=%v w[7]=%v, want equal", buf[2], buf[14])
	}
}

func TestApplyWindowTwiceSquares(t *testing.T) {
	e, err := New(16)
	if err != nil {
		t.Fatal(err)
	}

	once := testutil.Ones(16)
	if err := e.ApplyWindow(once); err != nil {
		t.Fatal(err)
	}

	twice := testutil.Clone(once)
	if err := e.ApplyWindow(twice); err != nil {
		t.Fatal(err)
	}

	want := make([]float32, len(once))
	for i, w := range once {
		want[i] = w * w
	}

	testutil.RequireSliceNearlyEqual(t, twice, want, 1e-7)
}
