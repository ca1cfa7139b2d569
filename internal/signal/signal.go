// Package signal provides a dense, platform-independent enumeration of the
// POSIX signals together with their default dispositions.
//
// Raw OS signal numbers are not contiguous and differ between platforms. A
// Signal is a zero-based ordinal: the standard signals come first, followed by
// the real-time signals. All methods on Signal assume the value has been
// checked with Validate beforehand.
package signal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// Signal is a canonical signal ordinal.
type Signal int

// Real-time signals, in the order SIGRTMIN..SIGRTMIN+15, SIGRTMAX-14..SIGRTMAX.
const (
	SIGRTMIN Signal = Signal(StandardCount) + iota
	SIGRTMIN_1
	SIGRTMIN_2
	SIGRTMIN_3
	SIGRTMIN_4
	SIGRTMIN_5
	SIGRTMIN_6
	SIGRTMIN_7
	SIGRTMIN_8
	SIGRTMIN_9
	SIGRTMIN_10
	SIGRTMIN_11
	SIGRTMIN_12
	SIGRTMIN_13
	SIGRTMIN_14
	SIGRTMIN_15
	SIGRTMAX_14
	SIGRTMAX_13
	SIGRTMAX_12
	SIGRTMAX_11
	SIGRTMAX_10
	SIGRTMAX_9
	SIGRTMAX_8
	SIGRTMAX_7
	SIGRTMAX_6
	SIGRTMAX_5
	SIGRTMAX_4
	SIGRTMAX_3
	SIGRTMAX_2
	SIGRTMAX_1
	SIGRTMAX
)

// Bounds of the two contiguous sub-ranges.
const (
	First = SIGHUP
	Last  = SIGRTMAX
	Count = int(Last-First) + 1

	StandardFirst = First
	StandardLast  = StandardFirst + Signal(StandardCount) - 1

	RealTimeFirst = SIGRTMIN
	RealTimeLast  = SIGRTMAX
	RealTimeCount = int(RealTimeLast-RealTimeFirst) + 1
)

// Validate reports whether v is a canonical signal ordinal.
func Validate(v int) bool {
	return v >= int(First) && v <= int(Last)
}

// IsStandard reports whether s belongs to the standard block.
func (s Signal) IsStandard() bool {
	return s >= StandardFirst && s <= StandardLast
}

// IsRealTime reports whether s belongs to the real-time block.
func (s Signal) IsRealTime() bool {
	return s >= RealTimeFirst && s <= RealTimeLast
}

// IsHookable reports whether the disposition of s may be altered.
// SIGKILL and SIGSTOP can never be caught, blocked or ignored.
func (s Signal) IsHookable() bool {
	return s != SIGKILL && s != SIGSTOP
}

// Raw returns the OS signal number of s.
func (s Signal) Raw() int {
	if s.IsStandard() {
		return standardSignals[s].raw
	}
	return RTBase + int(s-RealTimeFirst)
}

// OS returns s as an os.Signal suitable for os/signal.
func (s Signal) OS() os.Signal {
	return syscall.Signal(s.Raw())
}

// Name returns the conventional name of s, e.g. "SIGINT" or "SIGRTMIN + 3".
func (s Signal) Name() string {
	if s.IsStandard() {
		return standardSignals[s].name
	}
	return realTimeSignals[s-RealTimeFirst].name
}

// Description returns a short human-readable description of s.
func (s Signal) Description() string {
	if s.IsStandard() {
		return standardSignals[s].desc
	}
	return realTimeSignals[s-RealTimeFirst].desc
}

// DefaultDisposition returns the action taken when s is delivered and not
// handled. Real-time signals have no standardised default.
func (s Signal) DefaultDisposition() Disposition {
	if s.IsStandard() {
		return standardSignals[s].disposition
	}
	return Unspecified
}

// IsTermination reports whether the default action of s ends the process.
func (s Signal) IsTermination() bool {
	d := s.DefaultDisposition()
	return d == Terminate || d == CoreDump
}

func (s Signal) String() string {
	if !Validate(int(s)) {
		return "Signal(" + strconv.Itoa(int(s)) + ")"
	}
	return s.Name()
}

// FromRaw converts an OS signal number to its canonical form.
func FromRaw(raw int) (Signal, bool) {
	for i := StandardFirst; i <= StandardLast; i++ {
		if standardSignals[i].raw == raw {
			return i, true
		}
	}
	if raw >= RTBase && raw <= RTBase+RealTimeCount-1 {
		return RealTimeFirst + Signal(raw-RTBase), true
	}
	return 0, false
}

// FromOS converts an os.Signal to its canonical form.
func FromOS(sig os.Signal) (Signal, bool) {
	sys, ok := sig.(syscall.Signal)
	if !ok {
		return 0, false
	}
	return FromRaw(int(sys))
}

// All returns every canonical signal in ordinal order.
func All() []Signal {
	all := make([]Signal, 0, Count)
	for s := First; s <= Last; s++ {
		all = append(all, s)
	}
	return all
}

var nameToSignal = map[string]Signal{}

func init() {
	for s := First; s <= Last; s++ {
		nameToSignal[normalizeName(s.Name())] = s
	}
	for name, s := range aliases {
		nameToSignal[normalizeName(name)] = s
	}
}

// Parse looks up a signal by name. The "SIG" prefix, case and blanks around
// the real-time offset are optional: "SIGINT", "int" and "RTMIN+3" are all
// accepted.
func Parse(name string) (Signal, error) {
	key := normalizeName(name)
	if s, ok := nameToSignal[key]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("unknown signal %q", name)
}

func normalizeName(name string) string {
	n := strings.ToUpper(strings.Join(strings.Fields(name), ""))
	if !strings.HasPrefix(n, "SIG") {
		n = "SIG" + n
	}
	return n
}
