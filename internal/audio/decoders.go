package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

func decodeWAV(f *os.File) (*Clip, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth <= 0 || bitDepth > 32 {
		return nil, fmt.Errorf("unsupported WAV bit depth %d", bitDepth)
	}

	channels := buf.Format.NumChannels
	scale := 1 / float32(int64(1)<<(bitDepth-1))
	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		if bitDepth == 8 {
			// 8-bit WAV is unsigned
			v -= 128
		}
		samples[i] = float32(v) * scale
	}

	return &Clip{
		Samples:    mixInterleaved(samples, channels),
		SampleRate: buf.Format.SampleRate,
		Channels:   channels,
	}, nil
}

// go-mp3 always produces 16-bit little-endian stereo.
func decodeMP3(f *os.File) (*Clip, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading MP3 frames: %w", err)
	}

	samples := make([]float32, len(raw)/2)
	for i := range samples {
		samples[i] = float32(int16(binary.LittleEndian.Uint16(raw[2*i:]))) / 32768
	}

	return &Clip{
		Samples:    mixInterleaved(samples, 2),
		SampleRate: dec.SampleRate(),
		Channels:   2,
	}, nil
}

// maxPrealloc bounds the sample capacity reserved from a FLAC header's
// total sample count, which the file controls.
const maxPrealloc = 1 << 24

func decodeFLAC(f *os.File) (*Clip, error) {
	stream, err := flac.New(f)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	info := stream.Info
	if info.BitsPerSample == 0 || info.NChannels == 0 {
		return nil, fmt.Errorf("invalid FLAC stream info")
	}
	channels := int(info.NChannels)
	scale := 1 / float32(int64(1)<<(info.BitsPerSample-1))

	samples := make([]float32, 0, min(info.NSamples, maxPrealloc))
	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing FLAC frame: %w", err)
		}

		n := int(frame.Subframes[0].NSamples)
		for i := 0; i < n; i++ {
			var sum float32
			for ch := 0; ch < channels; ch++ {
				sum += float32(frame.Subframes[ch].Samples[i])
			}
			samples = append(samples, sum*scale/float32(channels))
		}
	}

	return &Clip{
		Samples:    samples,
		SampleRate: int(info.SampleRate),
		Channels:   channels,
	}, nil
}

func decodeOGG(f *os.File) (*Clip, error) {
	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		return nil, err
	}

	channels := reader.Channels()
	var samples []float32
	chunk := make([]float32, 4096*channels)
	for {
		n, err := reader.Read(chunk)
		samples = append(samples, chunk[:n]...)
		if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading OGG packets: %w", err)
		}
	}

	return &Clip{
		Samples:    mixInterleaved(samples, channels),
		SampleRate: reader.SampleRate(),
		Channels:   channels,
	}, nil
}
