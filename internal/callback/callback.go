// Package callback holds the bounded set of signal callbacks and the lock-free
// scan that invokes them when a signal is delivered.
//
// # Dispatch context
//
// Dispatch, and every callback it runs, executes while a signal delivery is
// being processed. Code running there must stay within a small, reentrant
// subset of operations:
//
//   - no blocking: no channel operations that can block, no locks, no sleeps
//   - no unbounded work and no allocation in the hot path
//   - no registry mutation (Hook*, Unhook*, Clear)
//
// The registry does not enforce these rules; they are upheld by review.
package callback

import "github.com/dagu-org/psig/internal/signal"

// CodeUnavailable is reported in Info.Code when the delivery mechanism does
// not expose the si_code of the signal.
const CodeUnavailable = -1 << 31

// Info describes one signal delivery.
type Info struct {
	Signal signal.Signal
	// Code is the si_code supplied by the OS, or CodeUnavailable.
	Code int
}

// Callback is a function registered to run on signal delivery. A Callback is
// identified by its pointer: hooking the same *Callback many times upgrades a
// single registration.
type Callback struct {
	name string
	fn   func(Info)
}

// New returns a Callback running fn.
func New(fn func(Info)) *Callback {
	return &Callback{fn: fn}
}

// Named returns a Callback running fn, labelled for diagnostics.
func Named(name string, fn func(Info)) *Callback {
	return &Callback{name: name, fn: fn}
}

// Name returns the diagnostic label of c, which may be empty.
func (c *Callback) Name() string {
	return c.name
}

func (c *Callback) call(info Info) {
	c.fn(info)
}
