package spectrum

import (
	"errors"
	"fmt"
)

// ErrEmptyBand is returned when a band is narrower than one bin at the
// given resolution, or lies entirely above the available bins.
var ErrEmptyBand = errors.New("spectrum: band covers no bins")

var (
	errOddBuffer      = errors.New("spectrum: interleaved buffer has odd length")
	errDstLength      = errors.New("spectrum: destination length must equal bin count")
	errMismatchLength = errors.New("spectrum: magnitude length does not match accumulator")
)

func validateInterleaved(dst []float64, buf []float32) error {
	if len(buf)%2 != 0 {
		return fmt.Errorf("%w: %d", errOddBuffer, len(buf))
	}
	if len(dst) != len(buf)/2 {
		return fmt.Errorf("%w: got %d, want %d", errDstLength, len(dst), len(buf)/2)
	}
	return nil
}

func validateRate(size int, sampleRate float64) error {
	if size <= 0 {
		return fmt.Errorf("spectrum: fft size must be > 0: %d", size)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("spectrum: sample rate must be > 0: %f", sampleRate)
	}
	return nil
}
