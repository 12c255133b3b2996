package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float32, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(float64(got[i]) - float64(want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSpectrumNearlyEqual compares an interleaved buffer with complex
// reference bins. eps is scaled by the largest reference magnitude so that
// large transforms are judged relative to their dynamic range.
func RequireSpectrumNearlyEqual(t *testing.T, got []float32, want []complex128, eps float64) {
	t.Helper()
	if len(got) != 2*len(want) {
		t.Fatalf("length mismatch: got %d floats, want %d", len(got), 2*len(want))
	}

	scale := 1.0
	for _, w := range want {
		if m := math.Hypot(real(w), imag(w)); m > scale {
			scale = m
		}
	}

	for k, w := range want {
		dr := math.Abs(float64(got[2*k]) - real(w))
		di := math.Abs(float64(got[2*k+1]) - imag(w))
		if dr > eps*scale || di > eps*scale {
			t.Fatalf("bin %d: got (%v, %v), want %v (tolerance %v)", k, got[2*k], got[2*k+1], w, eps*scale)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// Energy returns the sum of squared magnitudes of an interleaved buffer.
func Energy(buf []float32) float64 {
	sum := 0.0
	for _, v := range buf {
		sum += float64(v) * float64(v)
	}
	return sum
}
