// Package fftlog reports FFT engine calls through logrus.
//
// It is an [fft.Observer]: attach it with fft.WithObserver and every engine
// call produces one structured entry. Successful calls are logged at Debug by
// default and rejected calls at Warn.
package fftlog

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-radix2/dsp/fft"
)

// Option configures an Observer.
type Option func(*Observer)

// WithSuccessLevel sets the level used for calls that returned no error.
func WithSuccessLevel(level logrus.Level) Option {
	return func(o *Observer) {
		o.successLevel = level
	}
}

// WithErrorLevel sets the level used for rejected calls.
func WithErrorLevel(level logrus.Level) Option {
	return func(o *Observer) {
		o.errorLevel = level
	}
}

// Observer logs engine events. It holds no mutable state and is safe for
// concurrent use when the logger is.
type Observer struct {
	log          logrus.FieldLogger
	successLevel logrus.Level
	errorLevel   logrus.Level
}

// New returns an observer writing to log. A nil log uses the logrus standard
// logger.
func New(log logrus.FieldLogger, opts ...Option) *Observer {
	if log == nil {
		log = logrus.StandardLogger()
	}

	o := &Observer{
		log:          log,
		successLevel: logrus.DebugLevel,
		errorLevel:   logrus.WarnLevel,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// Observe implements [fft.Observer].
func (o *Observer) Observe(ev fft.Event) {
	fields := logrus.Fields{
		"op":      string(ev.Op),
		"size":    ev.Size,
		"elapsed": ev.Elapsed,
	}
	if ev.Op != fft.OpNew {
		fields["buffer_len"] = ev.BufLen
	}

	entry := o.log.WithFields(fields)

	if ev.Err != nil {
		entry.WithError(ev.Err).WithField("kind", fft.KindOf(ev.Err).String()).Log(o.errorLevel, "fft call rejected")
		return
	}

	entry.Log(o.successLevel, "fft call completed")
}
