// Package fft provides a fixed-size, in-place radix-2 FFT engine over
// interleaved float32 buffers, together with a Hann window step.
//
// A buffer for an engine of size N holds N complex samples as 2N floats:
// index 2i is the real part of sample i and 2i+1 its imaginary part. The
// engine validates the buffer length before touching it and never retains
// the buffer after a call returns.
//
// Transform computes the forward (negative exponent) DFT without 1/N
// scaling. The output is in natural order.
//
// An Engine is read-only after New and may be shared between goroutines, as
// long as no two calls operate on the same buffer at once.
package fft
