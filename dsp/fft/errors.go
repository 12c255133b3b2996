package fft

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the engine. Concrete errors wrap one of these,
// so callers can match with errors.Is.
var (
	// ErrInvalidSize is returned by New when the size is not a power of two
	// or exceeds the configured maximum.
	ErrInvalidSize = errors.New("fft: invalid size")

	// ErrBufferLengthMismatch is returned by Transform and ApplyWindow when
	// the buffer does not hold exactly 2*Size floats.
	ErrBufferLengthMismatch = errors.New("fft: buffer length mismatch")
)

// ErrorKind classifies engine errors.
type ErrorKind int

const (
	// KindUnknown is any error not produced by the engine, including nil.
	KindUnknown ErrorKind = iota
	// KindInvalidSize marks errors wrapping ErrInvalidSize.
	KindInvalidSize
	// KindBufferLengthMismatch marks errors wrapping ErrBufferLengthMismatch.
	KindBufferLengthMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidSize:
		return "InvalidSize"
	case KindBufferLengthMismatch:
		return "BufferLengthMismatch"
	default:
		return "Unknown"
	}
}

// KindOf reports the kind of err, looking through wrapped errors.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidSize):
		return KindInvalidSize
	case errors.Is(err, ErrBufferLengthMismatch):
		return KindBufferLengthMismatch
	default:
		return KindUnknown
	}
}

// SizeReason names the constraint a rejected size violated.
type SizeReason int

const (
	// NotPowerOfTwo means the size is zero, negative or has more than one bit set.
	NotPowerOfTwo SizeReason = iota + 1
	// ExceedsMax means the size is a power of two above the configured maximum.
	ExceedsMax
)

func (r SizeReason) String() string {
	switch r {
	case NotPowerOfTwo:
		return "not a power of two"
	case ExceedsMax:
		return "exceeds maximum"
	default:
		return "unknown"
	}
}

// SizeError describes a rejected transform size.
type SizeError struct {
	Size    int
	MaxSize int
	Reason  SizeReason
}

func (e *SizeError) Error() string {
	if e.Reason == ExceedsMax {
		return fmt.Sprintf("fft: invalid size %d: exceeds maximum %d", e.Size, e.MaxSize)
	}

	return fmt.Sprintf("fft: invalid size %d: %s", e.Size, e.Reason)
}

func (e *SizeError) Unwrap() error { return ErrInvalidSize }

// LengthError describes a buffer whose length does not match the engine.
type LengthError struct {
	Op   Op
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("fft: %s: buffer length %d, want %d", e.Op, e.Got, e.Want)
}

func (e *LengthError) Unwrap() error { return ErrBufferLengthMismatch }

func validateSize(size, maxSize int) error {
	if !isPowerOfTwo(size) {
		return &SizeError{Size: size, MaxSize: maxSize, Reason: NotPowerOfTwo}
	}

	if size > maxSize {
		return &SizeError{Size: size, MaxSize: maxSize, Reason: ExceedsMax}
	}

	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
