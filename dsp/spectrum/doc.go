// Package spectrum turns interleaved FFT output into analysis values.
//
// The input of every function is the buffer layout produced by
// [fft.Engine.Transform]: N complex bins as 2N float32 values, real part at
// even indices. The engine does not normalize, so magnitudes grow with N;
// use [Normalize] when values must be comparable across sizes.
//
// [fft.Engine.Transform]: https://pkg.go.dev/github.com/cwbudde/algo-radix2/dsp/fft#Engine.Transform
package spectrum
