// Package audio decodes audio files into mono float32 samples for analysis.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bogem/id3v2/v2"
)

// ErrUnsupportedFormat is returned for file extensions without a decoder.
var ErrUnsupportedFormat = errors.New("audio: unsupported format")

// Clip is a decoded file mixed down to one channel.
type Clip struct {
	Title      string
	Samples    []float32 // mono, nominally in [-1, 1]
	SampleRate int
	Channels   int // channel count of the source
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

type decodeFunc func(f *os.File) (*Clip, error)

var decoders = map[string]decodeFunc{
	".wav":  decodeWAV,
	".mp3":  decodeMP3,
	".flac": decodeFLAC,
	".ogg":  decodeOGG,
}

// SupportedExts returns the recognised file extensions.
func SupportedExts() []string {
	return []string{".flac", ".mp3", ".ogg", ".wav"}
}

// Decode reads the file at path, choosing a decoder by extension.
func Decode(path string) (*Clip, error) {
	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	clip, err := dec(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	if clip.SampleRate <= 0 {
		return nil, fmt.Errorf("decoding %s: invalid sample rate %d", filepath.Base(path), clip.SampleRate)
	}

	clip.Title = title(path, ext)

	return clip, nil
}

// title reads the ID3v2 title of MP3 files and falls back to the file name.
func title(path, ext string) string {
	if ext == ".mp3" {
		tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
		if err == nil {
			defer tag.Close()
			if t := strings.TrimSpace(tag.Title()); t != "" {
				if a := strings.TrimSpace(tag.Artist()); a != "" {
					return a + " - " + t
				}
				return t
			}
		}
	}

	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// mixInterleaved averages interleaved frames of channels samples into one
// channel. A trailing partial frame is dropped.
func mixInterleaved(samples []float32, channels int) []float32 {
	if channels <= 1 {
		return samples
	}

	out := make([]float32, len(samples)/channels)
	inv := 1 / float32(channels)
	for i := range out {
		var sum float32
		for _, s := range samples[i*channels : (i+1)*channels] {
			sum += s
		}
		out[i] = sum * inv
	}
	return out
}
