package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-radix2/dsp/fft"
	"github.com/cwbudde/algo-radix2/dsp/spectrum"
	"github.com/cwbudde/algo-radix2/internal/audio"
)

func toneClip(freq float64, rate, n int) *audio.Clip {
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate)))
	}
	return &audio.Clip{Title: "tone", Samples: samples, SampleRate: rate, Channels: 1}
}

func defaultOptions() options {
	return options{size: 256, top: 3, window: true, maxSize: fft.DefaultMaxSize}
}

func TestAnalyzeFindsTone(t *testing.T) {
	// 8000/256 = 31.25 Hz per bin; 1 kHz sits on bin 32.
	clip := toneClip(1000, 8000, 256*4+100)

	rep, err := analyze(clip, defaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 4, rep.blocks)
	assert.Equal(t, 256, rep.size)
	assert.True(t, rep.windowed)
	require.NotEmpty(t, rep.peaks)
	assert.Equal(t, 32, rep.peaks[0].Bin)
	assert.InDelta(t, 1000, rep.peaks[0].Frequency, 1e-9)

	// A 0.5 amplitude real tone has 0.25 per side; Hann halves the bin center.
	assert.InDelta(t, 0.125, rep.peaks[0].Magnitude, 1e-3)

	require.Len(t, rep.bands, 4)
	for _, l := range rep.bands {
		assert.True(t, l.ok, l.band.Name)
	}
}

func TestAnalyzeWithoutWindow(t *testing.T) {
	opts := defaultOptions()
	opts.window = false

	rep, err := analyze(toneClip(1000, 8000, 512), opts)
	require.NoError(t, err)

	assert.False(t, rep.windowed)
	assert.InDelta(t, 0.25, rep.peaks[0].Magnitude, 1e-3)
}

func TestAnalyzeMarksBandsBelowResolution(t *testing.T) {
	opts := defaultOptions()
	opts.size = 16

	// 8000/16 = 500 Hz per bin: kick and bass fall inside bin 0's gap.
	rep, err := analyze(toneClip(1000, 8000, 64), opts)
	require.NoError(t, err)

	require.Len(t, rep.bands, 4)
	assert.False(t, rep.bands[0].ok, "kick")
	assert.False(t, rep.bands[1].ok, "bass")
	assert.True(t, rep.bands[2].ok, "low-mid")
	assert.True(t, rep.bands[3].ok, "high-mid")
}

func TestAnalyzeRejectsInvalidSampleRate(t *testing.T) {
	clip := toneClip(1000, 8000, 512)
	clip.SampleRate = 0

	_, err := analyze(clip, defaultOptions())
	require.Error(t, err)
	assert.NotErrorIs(t, err, spectrum.ErrEmptyBand)
}

func TestAnalyzeRejectsShortClip(t *testing.T) {
	_, err := analyze(toneClip(1000, 8000, 100), defaultOptions())
	assert.ErrorIs(t, err, errClipTooShort)
}

func TestAnalyzeRejectsBadSize(t *testing.T) {
	opts := defaultOptions()
	opts.size = 300

	_, err := analyze(toneClip(1000, 8000, 1024), opts)
	assert.Equal(t, fft.KindInvalidSize, fft.KindOf(err))

	opts.size = 1024
	opts.maxSize = 512
	_, err = analyze(toneClip(1000, 8000, 2048), opts)
	assert.ErrorIs(t, err, fft.ErrInvalidSize)
}

func TestAnalyzeReportsObserverEvents(t *testing.T) {
	var ops []fft.Op
	opts := defaultOptions()
	opts.observer = fft.ObserverFunc(func(ev fft.Event) { ops = append(ops, ev.Op) })

	_, err := analyze(toneClip(440, 8000, 512), opts)
	require.NoError(t, err)

	assert.Equal(t, []fft.Op{fft.OpNew, fft.OpWindow, fft.OpTransform, fft.OpWindow, fft.OpTransform}, ops)
}
