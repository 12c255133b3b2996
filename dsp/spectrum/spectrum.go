package spectrum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for deinterleaving.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func deinterleave(re, im []float64, buf []float32) {
	for i := range re {
		re[i] = float64(buf[2*i])
		im[i] = float64(buf[2*i+1])
	}
}

// Magnitude writes |X[k]| of the interleaved bins in buf into dst.
//
// dst must have len(buf)/2 elements. Scratch buffers are pooled, so in
// steady state this does not allocate.
func Magnitude(dst []float64, buf []float32) error {
	if err := validateInterleaved(dst, buf); err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}

	re, im, scratch := getScratch(len(dst))
	deinterleave(re, im, buf)
	vecmath.Magnitude(dst, re, im)
	putScratch(scratch)

	return nil
}

// Power writes |X[k]|^2 of the interleaved bins in buf into dst.
func Power(dst []float64, buf []float32) error {
	if err := validateInterleaved(dst, buf); err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}

	re, im, scratch := getScratch(len(dst))
	deinterleave(re, im, buf)
	vecmath.Power(dst, re, im)
	putScratch(scratch)

	return nil
}

// Normalize scales magnitudes in place by 1/n, undoing the growth of an
// unnormalized size-n transform.
func Normalize(mags []float64, n int) {
	if n <= 0 || len(mags) == 0 {
		return
	}
	vecmath.ScaleBlock(mags, mags, 1/float64(n))
}

// Decibels returns 20*log10(m), clamped below at floorDB.
func Decibels(m, floorDB float64) float64 {
	if m <= 0 {
		return floorDB
	}
	return math.Max(20*math.Log10(m), floorDB)
}

// ToDecibels applies [Decibels] to each magnitude. dst and mags may alias.
func ToDecibels(dst, mags []float64, floorDB float64) {
	for i, m := range mags[:min(len(dst), len(mags))] {
		dst[i] = Decibels(m, floorDB)
	}
}

// BinFrequency returns the center frequency of bin for a size-point
// transform at sampleRate.
func BinFrequency(bin, size int, sampleRate float64) float64 {
	if size <= 0 {
		return 0
	}
	return float64(bin) * sampleRate / float64(size)
}

// Average accumulates magnitude spectra of equal length and reports their
// mean.
type Average struct {
	sum   []float64
	count int
}

// NewAverage returns an accumulator for spectra of n bins.
func NewAverage(n int) *Average {
	return &Average{sum: make([]float64, n)}
}

// Add accumulates mags.
func (a *Average) Add(mags []float64) error {
	if len(mags) != len(a.sum) {
		return errMismatchLength
	}
	vecmath.AddBlockInPlace(a.sum, mags)
	a.count++
	return nil
}

// Count returns the number of spectra added.
func (a *Average) Count() int { return a.count }

// Mean returns the mean spectrum, or nil if nothing was added.
func (a *Average) Mean() []float64 {
	if a.count == 0 {
		return nil
	}
	out := make([]float64, len(a.sum))
	vecmath.ScaleBlock(out, a.sum, 1/float64(a.count))
	return out
}
