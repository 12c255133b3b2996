package main

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-radix2/dsp/fft"
	"github.com/cwbudde/algo-radix2/dsp/spectrum"
	"github.com/cwbudde/algo-radix2/internal/audio"
)

var errClipTooShort = errors.New("clip is shorter than one transform block")

type bandLevel struct {
	band   spectrum.Band
	energy float64
	ok     bool
}

type report struct {
	title      string
	sampleRate int
	duration   float64
	size       int
	blocks     int
	windowed   bool
	peaks      []spectrum.Peak
	bands      []bandLevel
}

// analyze averages the normalized magnitude spectra of all complete blocks
// of clip. Only bins 0..N/2 are kept since the input is real.
func analyze(clip *audio.Clip, opts options) (*report, error) {
	e, err := fft.New(opts.size, fft.WithMaxSize(opts.maxSize), fft.WithObserver(opts.observer))
	if err != nil {
		return nil, err
	}

	n := e.Size()
	blocks := len(clip.Samples) / n
	if blocks == 0 {
		return nil, fmt.Errorf("%w: %d samples, block size %d", errClipTooShort, len(clip.Samples), n)
	}

	half := n/2 + 1
	buf := make([]float32, e.BufferLen())
	mags := make([]float64, n)
	avg := spectrum.NewAverage(half)

	for b := 0; b < blocks; b++ {
		block := clip.Samples[b*n : (b+1)*n]
		for i, s := range block {
			buf[2*i] = s
			buf[2*i+1] = 0
		}

		if opts.window {
			if err := e.ApplyWindow(buf); err != nil {
				return nil, err
			}
		}
		if err := e.Transform(buf); err != nil {
			return nil, err
		}
		if err := spectrum.Magnitude(mags, buf); err != nil {
			return nil, err
		}

		spectrum.Normalize(mags, n)
		if err := avg.Add(mags[:half]); err != nil {
			return nil, err
		}
	}

	mean := avg.Mean()
	rate := float64(clip.SampleRate)

	rep := &report{
		title:      clip.Title,
		sampleRate: clip.SampleRate,
		duration:   clip.Duration(),
		size:       n,
		blocks:     blocks,
		windowed:   opts.window,
		peaks:      spectrum.Peaks(mean, n, rate, opts.top),
	}

	for _, band := range spectrum.DefaultBands {
		energy, err := spectrum.BandEnergy(mean, n, rate, band)
		switch {
		case err == nil:
			rep.bands = append(rep.bands, bandLevel{band: band, energy: energy, ok: true})
		case errors.Is(err, spectrum.ErrEmptyBand):
			rep.bands = append(rep.bands, bandLevel{band: band})
		default:
			return nil, fmt.Errorf("band %s: %w", band.Name, err)
		}
	}

	return rep, nil
}
