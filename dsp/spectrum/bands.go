package spectrum

import (
	"fmt"
	"math"
	"sort"
)

// Band is a frequency range [LowHz, HighHz).
type Band struct {
	Name   string
	LowHz  float64
	HighHz float64
}

// DefaultBands splits the low end into the ranges used for beat-driven
// visuals.
var DefaultBands = []Band{
	{Name: "kick", LowHz: 20, HighHz: 60},
	{Name: "bass", LowHz: 60, HighHz: 150},
	{Name: "low-mid", LowHz: 150, HighHz: 600},
	{Name: "high-mid", LowHz: 600, HighHz: 2000},
}

// BinRange returns the half-open bin range [start, end) covering b, with
// start = floor(LowHz/res) and end = floor(HighHz/res), clamped to nBins.
func BinRange(b Band, size int, sampleRate float64, nBins int) (start, end int, err error) {
	if err := validateRate(size, sampleRate); err != nil {
		return 0, 0, err
	}

	res := sampleRate / float64(size)
	start = int(math.Floor(b.LowHz / res))
	end = int(math.Floor(b.HighHz / res))
	start = max(start, 0)
	end = min(end, nBins)

	if end <= start {
		return 0, 0, fmt.Errorf("%w: %q [%g, %g) Hz at %g Hz per bin", ErrEmptyBand, b.Name, b.LowHz, b.HighHz, res)
	}

	return start, end, nil
}

// BandEnergy returns the mean magnitude of the bins covering b.
func BandEnergy(mags []float64, size int, sampleRate float64, b Band) (float64, error) {
	start, end, err := BinRange(b, size, sampleRate, len(mags))
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, m := range mags[start:end] {
		sum += m
	}

	return sum / float64(end-start), nil
}

// Peak is a local maximum of a magnitude spectrum.
type Peak struct {
	Bin       int
	Frequency float64
	Magnitude float64
}

// Peaks returns up to k local maxima of mags, strongest first. Only bins
// strictly greater than both neighbors qualify, so the first and last bins
// are never reported. Ties keep the lower bin first.
func Peaks(mags []float64, size int, sampleRate float64, k int) []Peak {
	if k <= 0 || len(mags) < 3 {
		return nil
	}

	var peaks []Peak
	for i := 1; i < len(mags)-1; i++ {
		if mags[i] > mags[i-1] && mags[i] > mags[i+1] {
			peaks = append(peaks, Peak{
				Bin:       i,
				Frequency: BinFrequency(i, size, sampleRate),
				Magnitude: mags[i],
			})
		}
	}

	sort.SliceStable(peaks, func(a, b int) bool {
		return peaks[a].Magnitude > peaks[b].Magnitude
	})

	if len(peaks) > k {
		peaks = peaks[:k]
	}

	return peaks
}
