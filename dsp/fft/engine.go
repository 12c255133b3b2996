package fft

import (
	"math"
	"time"
)

// DefaultMaxSize is the largest size New accepts unless [WithMaxSize] says
// otherwise. It guards against accidental huge allocations.
const DefaultMaxSize = 1_000_000

// Option configures an Engine.
type Option func(*config)

type config struct {
	maxSize  int
	observer Observer
}

func defaultConfig() config {
	return config{
		maxSize: DefaultMaxSize,
	}
}

// WithMaxSize overrides the upper size bound. Non-positive values are ignored.
func WithMaxSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// WithObserver attaches an observer notified after every engine call.
func WithObserver(o Observer) Option {
	return func(c *config) {
		c.observer = o
	}
}

// Engine is a radix-2 FFT of a fixed size.
type Engine struct {
	size     int
	maxSize  int
	twiddles []complex64
	observer Observer
}

// New returns an engine for size complex samples. The size must be a power of
// two no larger than the configured maximum; otherwise the returned error is a
// *SizeError wrapping [ErrInvalidSize].
func New(size int, opts ...Option) (*Engine, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var start time.Time
	if cfg.observer != nil {
		start = time.Now()
	}

	e, err := newEngine(size, cfg)

	if cfg.observer != nil {
		cfg.observer.Observe(Event{Op: OpNew, Size: size, Elapsed: time.Since(start), Err: err})
	}

	return e, err
}

func newEngine(size int, cfg config) (*Engine, error) {
	if err := validateSize(size, cfg.maxSize); err != nil {
		return nil, err
	}

	twiddles := make([]complex64, size)
	for k := range twiddles {
		theta := -2 * math.Pi * float64(k) / float64(size)
		sin, cos := math.Sincos(theta)
		twiddles[k] = complex(float32(cos), float32(sin))
	}

	return &Engine{
		size:     size,
		maxSize:  cfg.maxSize,
		twiddles: twiddles,
		observer: cfg.observer,
	}, nil
}

// Size returns the number of complex samples per transform.
func (e *Engine) Size() int { return e.size }

// MaxSize returns the size bound the engine was validated against.
func (e *Engine) MaxSize() int { return e.maxSize }

// BufferLen returns the required buffer length, 2*Size.
func (e *Engine) BufferLen() int { return 2 * e.size }

// Transform replaces buf with its forward DFT. A buffer of the wrong length is
// rejected with a *LengthError before any element is modified.
func (e *Engine) Transform(buf []float32) error {
	if e.observer == nil {
		return e.transform(buf)
	}

	start := time.Now()
	err := e.transform(buf)
	e.observer.Observe(Event{Op: OpTransform, Size: e.size, BufLen: len(buf), Elapsed: time.Since(start), Err: err})

	return err
}

// ApplyWindow multiplies each sample of buf by the periodic Hann weight
// 0.5*(1-cos(2*pi*i/N)). Both components of a sample get the same weight.
func (e *Engine) ApplyWindow(buf []float32) error {
	if e.observer == nil {
		return e.applyWindow(buf)
	}

	start := time.Now()
	err := e.applyWindow(buf)
	e.observer.Observe(Event{Op: OpWindow, Size: e.size, BufLen: len(buf), Elapsed: time.Since(start), Err: err})

	return err
}

func (e *Engine) checkLen(op Op, buf []float32) error {
	if len(buf) != 2*e.size {
		return &LengthError{Op: op, Got: len(buf), Want: 2 * e.size}
	}

	return nil
}

func (e *Engine) transform(buf []float32) error {
	if err := e.checkLen(OpTransform, buf); err != nil {
		return err
	}

	bitReverse(buf, e.size)
	e.butterflies(buf)

	return nil
}

// butterflies runs the iterative decimation-in-time stages over a
// bit-reversed buffer. step counts floats per group, so a group holds step/2
// complex samples and the stage's roots of unity are every (2N/step)-th
// table entry.
func (e *Engine) butterflies(buf []float32) {
	n2 := len(buf)
	tw := e.twiddles

	// step 2 would pair a sample with itself; start at the first real stage.
	for step := 4; step <= n2; step <<= 1 {
		half := step >> 1
		stride := n2 / step

		for i := 0; i < n2; i += step {
			for j := 0; j < half>>1; j++ {
				w := tw[j*stride]
				wr, wi := real(w), imag(w)

				idx1 := i + 2*j
				idx2 := idx1 + half

				xr, xi := buf[idx2], buf[idx2+1]
				tr := xr*wr - xi*wi
				ti := xr*wi + xi*wr

				// Both lower components are read before either half is written.
				ur, ui := buf[idx1], buf[idx1+1]
				buf[idx2] = ur - tr
				buf[idx2+1] = ui - ti
				buf[idx1] = ur + tr
				buf[idx1+1] = ui + ti
			}
		}
	}
}

func (e *Engine) applyWindow(buf []float32) error {
	if err := e.checkLen(OpWindow, buf); err != nil {
		return err
	}

	n := float64(e.size)
	for i := 0; i < e.size; i++ {
		w := float32(0.5 * (1 - math.Cos(2*math.Pi*float64(i)/n)))
		buf[2*i] *= w
		buf[2*i+1] *= w
	}

	return nil
}
