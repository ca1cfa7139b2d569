// Package library owns the process-wide signal handling state: the lifecycle
// word, the callback registry and the OS-level handlers routing every
// hookable signal to a single dispatch entry point.
//
// Only one Library backed by the OS source should exist per process, because
// the OS handler table is global. Default returns that instance; New is
// meant for tests and for embedding with a custom Source.
package library

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/dagu-org/psig/internal/callback"
	"github.com/dagu-org/psig/internal/logger"
	"github.com/dagu-org/psig/internal/signal"
)

const description = "POSIX Signals Library"

// Description returns the human readable name of the library.
func Description() string {
	return description
}

// DefaultQueueSize is the capacity of the delivery channel. Deliveries that
// arrive while it is full are dropped by the runtime.
const DefaultQueueSize = 64

// State is the lifecycle state of a Library.
type State int32

const (
	StateNotInitialized State = iota
	StateInitializing
	StateRunning
	StateShuttingDown
)

func (s State) String() string {
	switch s {
	case StateNotInitialized:
		return "not-initialized"
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting-down"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// Library coordinates handler installation, dispatch and teardown.
type Library struct {
	state    atomic.Int32
	registry *callback.Registry
	source   Source
	logger   logger.Logger
	queue    int
	exit     func(code int)

	// mu serialises changes to the OS handler table.
	mu   sync.Mutex
	ch   chan os.Signal
	done chan struct{}

	// overrides holds disposition+1 for overridden signals, 0 otherwise.
	overrides  [signal.Count]atomic.Uint32
	deliveries [signal.Count]atomic.Uint64
}

// Option configures a Library.
type Option func(*Library)

// WithSource sets the handler table implementation.
func WithSource(src Source) Option {
	return func(l *Library) {
		l.source = src
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(lg logger.Logger) Option {
	return func(l *Library) {
		l.logger = lg
	}
}

// WithQueueSize sets the capacity of the delivery channel.
func WithQueueSize(n int) Option {
	return func(l *Library) {
		if n > 0 {
			l.queue = n
		}
	}
}

// New returns a Library in the not-initialized state.
func New(opts ...Option) *Library {
	l := &Library{
		registry: callback.NewRegistry(),
		source:   OSSource(),
		queue:    DefaultQueueSize,
		exit:     os.Exit,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logger.NewLogger(logger.WithFormat("text"))
	}
	return l
}

// State returns the current lifecycle state.
func (l *Library) State() State {
	return State(l.state.Load())
}

// IsRunning reports whether handlers are installed.
func (l *Library) IsRunning() bool {
	return l.State() == StateRunning
}

// Callbacks returns the callback registry.
func (l *Library) Callbacks() *callback.Registry {
	return l.registry
}

// Init installs the dispatch entry point for every hookable signal. When
// another caller already started initialization, Init returns whether the
// library is running without waiting.
func (l *Library) Init() bool {
	if !l.state.CompareAndSwap(int32(StateNotInitialized), int32(StateInitializing)) {
		return l.IsRunning()
	}

	// The state is published under mu so that Override and Reset never
	// observe installed handlers together with a non-running state.
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.install() {
		l.state.Store(int32(StateNotInitialized))
		return false
	}
	l.state.Store(int32(StateRunning))
	return true
}

// Shutdown restores the default disposition of every hookable signal and
// clears the registry. It does nothing unless the library is running.
func (l *Library) Shutdown() {
	if !l.state.CompareAndSwap(int32(StateRunning), int32(StateShuttingDown)) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.teardown()
	l.state.Store(int32(StateNotInitialized))
}

// install requires l.mu.
func (l *Library) install() bool {
	ch := make(chan os.Signal, l.queue)
	installed := make([]signal.Signal, 0, signal.Count)
	for _, sig := range signal.All() {
		if !sig.IsHookable() {
			continue
		}
		if err := l.source.Notify(ch, sig.Raw()); err != nil {
			l.logger.With("err", err).Errorf("failed to hook callback on %q (%d)", sig.Name(), sig.Raw())
			l.source.Stop(ch)
			for _, s := range installed {
				l.source.Reset(s.Raw())
			}
			return false
		}
		installed = append(installed, sig)
	}
	// Only an explicit override ignores natively; a signal whose default is
	// to be ignored stays routed to the dispatcher.
	for _, sig := range installed {
		if l.overrides[sig].Load() == uint32(signal.Ignore)+1 {
			l.source.Ignore(sig.Raw())
		}
	}

	done := make(chan struct{})
	l.ch, l.done = ch, done
	go l.run(ch, done)

	l.logger.Debug("signal handlers installed", "signals", len(installed))
	return true
}

// teardown requires l.mu.
func (l *Library) teardown() {
	if l.ch != nil {
		l.source.Stop(l.ch)
	}
	for _, sig := range signal.All() {
		if sig.IsHookable() {
			l.source.Reset(sig.Raw())
		}
	}
	if l.done != nil {
		close(l.done)
	}
	l.ch, l.done = nil, nil
	for i := range l.overrides {
		l.overrides[i].Store(0)
	}
	l.registry.Clear()

	l.logger.Debug("signal handlers restored")
}

// run drains deliveries until done is closed. Deliveries still queued at
// that point are discarded.
func (l *Library) run(ch <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case sig := <-ch:
			select {
			case <-done:
				return
			default:
			}
			l.dispatch(sig)
		}
	}
}

// dispatch is the entry point for every installed signal.
func (l *Library) dispatch(delivered os.Signal) {
	raw, code := rawOf(delivered)
	sig, ok := signal.FromRaw(raw)
	if !ok {
		l.logger.Errorf("Unknown signal caught (%d)", raw)
		if raw <= 0 {
			raw = 1
		}
		l.exit(raw)
		return
	}
	l.deliveries[sig].Add(1)
	l.registry.Dispatch(callback.Info{Signal: sig, Code: code})
	l.enforce(sig)
}

func rawOf(sig os.Signal) (raw, code int) {
	switch v := sig.(type) {
	case Delivery:
		return v.Raw, v.Code
	case syscall.Signal:
		return int(v), callback.CodeUnavailable
	default:
		return -1, callback.CodeUnavailable
	}
}

// Deliveries returns how many times sig has been dispatched since the
// Library was created.
func (l *Library) Deliveries(sig signal.Signal) uint64 {
	return l.deliveries[sig].Load()
}

// Raise sends sig to the current process.
func (l *Library) Raise(sig signal.Signal) error {
	if !signal.Validate(int(sig)) {
		return errors.New("invalid signal")
	}
	if err := l.source.Raise(sig.Raw()); err != nil {
		return fmt.Errorf("failed to raise %s: %w", sig.Name(), err)
	}
	return nil
}
