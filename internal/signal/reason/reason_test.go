package reason

import (
	"testing"

	"github.com/dagu-org/psig/internal/signal"
	"github.com/stretchr/testify/assert"
)

func TestReason(t *testing.T) {
	tests := []struct {
		name string
		sig  signal.Signal
		code int
		want string
	}{
		{"SegvMapErr", signal.SIGSEGV, SEGVMapErr, "Address not mapped to object."},
		{"FpeIntDiv", signal.SIGFPE, FPEIntDiv, "Integer divide by zero."},
		{"FpeCondTrap", signal.SIGFPE, FPECondTrap, "Trap on condition."},
		{"IllBadStk", signal.SIGILL, ILLBadStk, "Internal stack error."},
		{"BusAdrAln", signal.SIGBUS, BUSAdrAln, "Invalid address alignment."},
		{"TrapBrkpt", signal.SIGTRAP, TRAPBrkpt, "Process breakpoint."},
		{"ChildExited", signal.SIGCHLD, CLDExited, "Child has exited."},
		{"PollHup", signal.SIGPOLL, POLLHup, "Device disconnected."},
		{"KillOnSegv", signal.SIGSEGV, SIUser, "Sent by kill, sigsend."},
		{"KernelOnSegv", signal.SIGSEGV, SIKernel, "Sent by kernel."},
		{"UserOnTerm", signal.SIGTERM, SIUser, "Sent by kill, sigsend."},
		{"QueueOnRealTime", signal.SIGRTMIN_2, SIQueue, "Sent by sigqueue."},
		{"TkillOnInt", signal.SIGINT, SITkill, "Sent by tkill."},
		{"UnknownFaultCode", signal.SIGSEGV, 99, Unknown},
		{"UnknownGenericCode", signal.SIGTERM, 42, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reason(tt.sig, tt.code))
		})
	}
}

func TestReason_NeverEmpty(t *testing.T) {
	for _, s := range signal.All() {
		for code := -64; code <= 0x80; code++ {
			assert.NotEmpty(t, Reason(s, code))
		}
	}
}
