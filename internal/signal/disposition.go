package signal

import (
	"fmt"
	"strings"
)

// Disposition is the action a signal triggers when it is not handled.
type Disposition uint8

const (
	// Continue resumes the process if it is currently stopped.
	Continue Disposition = iota
	// CoreDump terminates the process and produces a core dump.
	CoreDump
	// Ignore discards the signal.
	Ignore
	// Stop suspends the process.
	Stop
	// Terminate ends the process.
	Terminate
	// Unspecified is used for real-time signals, whose default POSIX leaves to
	// the implementation.
	Unspecified

	dispositionCount = int(Unspecified) + 1
)

// ValidateDisposition reports whether v is a defined Disposition.
func ValidateDisposition(v uint) bool {
	return v < uint(dispositionCount)
}

// Dispositions returns every disposition in declaration order.
func Dispositions() []Disposition {
	return []Disposition{Continue, CoreDump, Ignore, Stop, Terminate, Unspecified}
}

func (d Disposition) String() string {
	switch d {
	case Continue:
		return "Continue"
	case CoreDump:
		return "Core Dump"
	case Ignore:
		return "Ignore"
	case Stop:
		return "Stop"
	case Terminate:
		return "Terminate"
	case Unspecified:
		return "Unspecified"
	}
	panic(fmt.Sprintf("unreachable: invalid disposition %d", uint8(d)))
}

// ParseDisposition looks up a disposition by name, ignoring case, blanks,
// dashes and underscores ("core-dump", "CoreDump" and "core dump" match).
func ParseDisposition(name string) (Disposition, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	for _, d := range Dispositions() {
		if strings.ReplaceAll(strings.ToLower(d.String()), " ", "") == key {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown disposition %q", name)
}
