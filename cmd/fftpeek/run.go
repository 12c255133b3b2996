package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-radix2/dsp/fft"
	"github.com/cwbudde/algo-radix2/dsp/fft/fftlog"
	"github.com/cwbudde/algo-radix2/internal/audio"
)

type options struct {
	size     int
	top      int
	window   bool
	maxSize  int
	observer fft.Observer
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fftpeek", flag.ContinueOnError)
	fs.SetOutput(stderr)

	size := fs.Int("size", 2048, "transform size in samples (power of two)")
	top := fs.Int("top", 8, "number of peaks to print")
	noWindow := fs.Bool("no-window", false, "skip the Hann window")
	maxSize := fs.Int("max-size", fft.DefaultMaxSize, "largest accepted transform size")
	verbose := fs.Bool("v", false, "log every engine call")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fftpeek [flags] file ...\n\n")
		fmt.Fprintf(stderr, "Prints the strongest frequencies and band levels of audio files.\n")
		fmt.Fprintf(stderr, "Supported formats: %s\n\n", strings.Join(audio.SupportedExts(), " "))
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	logger := logrus.New()
	logger.SetOutput(stderr)

	opts := options{
		size:    *size,
		top:     *top,
		window:  !*noWindow,
		maxSize: *maxSize,
	}
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
		opts.observer = fftlog.New(logger)
	}

	status := 0
	for _, path := range fs.Args() {
		log := logger.WithField("file", path)

		clip, err := audio.Decode(path)
		if err != nil {
			log.WithError(err).Error("cannot decode")
			status = 1
			continue
		}

		rep, err := analyze(clip, opts)
		if err != nil {
			log.WithError(err).Error("cannot analyze")
			status = 1
			if fft.KindOf(err) == fft.KindInvalidSize {
				// The size is wrong for every file.
				return status
			}
			continue
		}

		if err := render(stdout, rep); err != nil {
			log.WithError(err).Error("cannot write report")
			return 1
		}
	}

	return status
}
