// Command fftpeek prints the dominant frequencies of audio files.
//
// Each file is decoded, mixed to mono and cut into consecutive blocks of
// -size samples. Every block is Hann-windowed and transformed with one radix-2
// engine; the block magnitudes are averaged and the strongest peaks and the
// low-end band levels of the average are printed.
//
// Usage:
//
//	fftpeek [flags] file ...
//
// Examples:
//
//	fftpeek song.mp3
//	fftpeek -size 8192 -top 12 take1.wav take2.flac
//	fftpeek -no-window -v loop.ogg
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
