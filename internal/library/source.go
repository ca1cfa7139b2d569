package library

import (
	"os"
	ossignal "os/signal"
	"strconv"
	"syscall"

	"golang.org/x/sys/unix"
)

// Source abstracts the OS-level signal handler table. The default
// implementation is backed by os/signal; tests inject their own.
type Source interface {
	// Notify routes deliveries of raw to ch.
	Notify(ch chan<- os.Signal, raw int) error
	// Stop routes no more deliveries to ch.
	Stop(ch chan<- os.Signal)
	// Ignore sets the disposition of raw to ignore.
	Ignore(raw int)
	// Reset restores the default disposition of raw.
	Reset(raw int)
	// Raise sends raw to the current process.
	Raise(raw int) error
}

// Delivery is an os.Signal carrying the si_code of the delivery. Sources
// that can observe the code send Delivery values instead of syscall.Signal.
type Delivery struct {
	Raw  int
	Code int
}

var _ os.Signal = Delivery{}

func (d Delivery) String() string {
	return "signal " + strconv.Itoa(d.Raw)
}

// Signal implements os.Signal.
func (Delivery) Signal() {}

// osSource installs handlers through the Go runtime. The runtime owns the
// real sigaction entries: they are installed with SA_SIGINFO|SA_ONSTACK and
// run on a per-thread alternate signal stack, then forwarded to ch.
type osSource struct{}

// OSSource returns the Source backed by os/signal.
func OSSource() Source {
	return osSource{}
}

func (osSource) Notify(ch chan<- os.Signal, raw int) error {
	if raw <= 0 || raw > maxRawSignal {
		return syscall.EINVAL
	}
	ossignal.Notify(ch, syscall.Signal(raw))
	return nil
}

func (osSource) Stop(ch chan<- os.Signal) {
	ossignal.Stop(ch)
}

func (osSource) Ignore(raw int) {
	ossignal.Ignore(syscall.Signal(raw))
}

func (osSource) Reset(raw int) {
	ossignal.Reset(syscall.Signal(raw))
}

func (osSource) Raise(raw int) error {
	return unix.Kill(unix.Getpid(), syscall.Signal(raw))
}

// maxRawSignal is the highest signal number the kernel accepts (_NSIG - 1).
const maxRawSignal = 64
