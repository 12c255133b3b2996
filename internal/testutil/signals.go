package testutil

import (
	"math"
	"math/rand"
)

// The generators below return interleaved buffers of n complex samples
// (2n floats, real at even indices).

// DeterministicSine generates a real sine wave with zero imaginary parts.
func DeterministicSine(freqHz, sampleRate, amplitude float64, n int) []float32 {
	out := make([]float32, 2*n)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := 0; i < n; i++ {
		out[2*i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates complex white noise with a fixed seed for
// reproducibility. Both components are uniform in [-amplitude, amplitude).
func DeterministicNoise(seed int64, amplitude float64, n int) []float32 {
	out := make([]float32, 2*n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit real impulse at sample pos.
func Impulse(n, pos int) []float32 {
	out := make([]float32, 2*n)
	if pos >= 0 && pos < n {
		out[2*pos] = 1
	}
	return out
}

// Ones returns n complex samples with both components set to 1.
func Ones(n int) []float32 {
	out := make([]float32, 2*n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Tagged returns n samples whose real part is the sample index and whose
// imaginary part is its negation, so permutations can be read back.
func Tagged(n int) []float32 {
	out := make([]float32, 2*n)
	for i := 0; i < n; i++ {
		out[2*i] = float32(i)
		out[2*i+1] = -float32(i)
	}
	return out
}

// ToComplex converts an interleaved buffer to complex128 samples.
func ToComplex(buf []float32) []complex128 {
	out := make([]complex128, len(buf)/2)
	for i := range out {
		out[i] = complex(float64(buf[2*i]), float64(buf[2*i+1]))
	}
	return out
}

// ToComplex64 converts an interleaved buffer to complex64 samples.
func ToComplex64(buf []float32) []complex64 {
	out := make([]complex64, len(buf)/2)
	for i := range out {
		out[i] = complex(buf[2*i], buf[2*i+1])
	}
	return out
}

// Clone returns a copy of buf.
func Clone(buf []float32) []float32 {
	return append([]float32(nil), buf...)
}
