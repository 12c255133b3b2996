package fft_test

import (
	"testing"

	algofft "github.com/cwbudde/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-radix2/dsp/fft"
	"github.com/cwbudde/algo-radix2/internal/testutil"
)

var referenceSizes = []int{8, 16, 64, 256, 1024, 4096}

func transformed(t *testing.T, n int, seed int64) (in, out []float32) {
	t.Helper()

	e, err := fft.New(n)
	if err != nil {
		t.Fatalf("New(%d): %v", n, err)
	}

	in = testutil.DeterministicNoise(seed, 1, n)
	out = testutil.Clone(in)
	if err := e.Transform(out); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	return in, out
}

func TestMatchesAlgoFFT(t *testing.T) {
	t.Parallel()

	for _, n := range referenceSizes {
		in, out := transformed(t, n, int64(n))

		plan, err := algofft.NewPlan32(n)
		if err != nil {
			t.Fatalf("NewPlan32(%d): %v", n, err)
		}

		want := make([]complex64, n)
		if err := plan.Forward(want, testutil.ToComplex64(in)); err != nil {
			t.Fatalf("Forward: %v", err)
		}

		ref := make([]complex128, n)
		for k, v := range want {
			ref[k] = complex128(v)
		}

		testutil.RequireSpectrumNearlyEqual(t, out, ref, 1e-4)
	}
}

func TestMatchesGonum(t *testing.T) {
	t.Parallel()

	for _, n := range referenceSizes {
		in, out := transformed(t, n, int64(n)+1)

		want := fourier.NewCmplxFFT(n).Coefficients(nil, testutil.ToComplex(in))
		testutil.RequireSpectrumNearlyEqual(t, out, want, 1e-5)
	}
}

func TestMatchesGoDSP(t *testing.T) {
	t.Parallel()

	for _, n := range referenceSizes {
		in, out := transformed(t, n, int64(n)+2)

		want := godsp.FFT(testutil.ToComplex(in))
		testutil.RequireSpectrumNearlyEqual(t, out, want, 1e-5)
	}
}

func TestWindowedToneLeaksLessThanRectangular(t *testing.T) {
	const n = 256

	e, err := fft.New(n)
	if err != nil {
		t.Fatal(err)
	}

	// 10.5 cycles per block puts the tone between two bins.
	rect := testutil.DeterministicSine(10.5, n, 1, n)
	hann := testutil.Clone(rect)

	if err := e.ApplyWindow(hann); err != nil {
		t.Fatal(err)
	}
	for _, buf := range [][]float32{rect, hann} {
		if err := e.Transform(buf); err != nil {
			t.Fatal(err)
		}
	}

	// Compare leakage far from the tone, relative to each spectrum's peak.
	far := func(buf []float32) float64 {
		peak, tail := 0.0, 0.0
		for k := 0; k < n/2; k++ {
			re, im := float64(buf[2*k]), float64(buf[2*k+1])
			p := re*re + im*im
			if p > peak {
				peak = p
			}
			if k > 40 {
				tail += p
			}
		}
		return tail / peak
	}

	if far(hann) >= far(rect) {
		t.Fatalf("Hann leakage %v not below rectangular %v", far(hann), far(rect))
	}
}
