package fft

import "time"

// Op identifies an engine operation reported to an [Observer].
type Op string

const (
	OpNew       Op = "new"
	OpTransform Op = "transform"
	OpWindow    Op = "window"
)

// Event describes one completed engine call.
type Event struct {
	Op      Op
	Size    int
	BufLen  int // 0 for OpNew
	Elapsed time.Duration
	Err     error
}

// Observer receives an Event after every engine call, including rejected
// ones. Observers attached to a shared engine must be safe for concurrent
// use.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to [Observer].
type ObserverFunc func(Event)

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev Event) { f(ev) }
