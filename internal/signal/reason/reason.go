// Package reason decodes the si_code accompanying a delivered signal into a
// human-readable explanation of why the signal was sent.
package reason

import "github.com/dagu-org/psig/internal/signal"

// Unknown is returned when no explanation is known for a code.
const Unknown = "Unknown reason"

var (
	illReasons = map[int]string{
		ILLIllOpc:   "Illegal opcode.",
		ILLIllOpn:   "Illegal operand.",
		ILLIllAdr:   "Illegal addressing mode.",
		ILLIllTrp:   "Illegal trap.",
		ILLPrvOpc:   "Privileged opcode.",
		ILLPrvReg:   "Privileged register.",
		ILLCoproc:   "Coprocessor error.",
		ILLBadStk:   "Internal stack error.",
		ILLBadIAddr: "Unimplemented instruction address.",
	}
	fpeReasons = map[int]string{
		FPEIntDiv:   "Integer divide by zero.",
		FPEIntOvf:   "Integer overflow.",
		FPEFltDiv:   "Floating-point divide by zero.",
		FPEFltOvf:   "Floating-point overflow.",
		FPEFltUnd:   "Floating-point underflow.",
		FPEFltRes:   "Floating-point inexact result.",
		FPEFltInv:   "Floating-point invalid operation.",
		FPEFltSub:   "Subscript out of range.",
		FPEFltUnk:   "Undiagnosed floating-point exception.",
		FPECondTrap: "Trap on condition.",
	}
	segvReasons = map[int]string{
		SEGVMapErr:  "Address not mapped to object.",
		SEGVAccErr:  "Invalid permissions for mapped object.",
		SEGVBndErr:  "Bounds checking failure.",
		SEGVPkuErr:  "Protection key checking failure.",
		SEGVAccADI:  "ADI not enabled for mapped object.",
		SEGVADIDErr: "Disrupting MCD error.",
		SEGVADIPErr: "Precise MCD exception.",
		SEGVMTEAErr: "Asynchronous ARM MTE error.",
		SEGVMTESErr: "Synchronous ARM MTE exception.",
		SEGVCPErr:   "Control protection fault.",
	}
	busReasons = map[int]string{
		BUSAdrAln:   "Invalid address alignment.",
		BUSAdrErr:   "Non-existent physical address.",
		BUSObjErr:   "Object specific hardware error.",
		BUSMCEErrAR: "Hardware memory error: action required.",
		BUSMCEErrAO: "Hardware memory error: action optional.",
	}
	trapReasons = map[int]string{
		TRAPBrkpt:  "Process breakpoint.",
		TRAPTrace:  "Process trace trap.",
		TRAPBranch: "Process taken branch trap.",
		TRAPHwBkpt: "Hardware breakpoint/watchpoint.",
		TRAPUnk:    "Undiagnosed trap.",
	}
	cldReasons = map[int]string{
		CLDExited:    "Child has exited.",
		CLDKilled:    "Child was killed.",
		CLDDumped:    "Child terminated abnormally.",
		CLDTrapped:   "Traced child has trapped.",
		CLDStopped:   "Child has stopped.",
		CLDContinued: "Stopped child has continued.",
	}
	pollReasons = map[int]string{
		POLLIn:  "Data input available.",
		POLLOut: "Output buffers available.",
		POLLMsg: "Input message available.",
		POLLErr: "I/O error.",
		POLLPri: "High priority input available.",
		POLLHup: "Device disconnected.",
	}
	genericReasons = map[int]string{
		SIAsyncNL:  "Sent by asynch name lookup completion.",
		SIDethread: "Sent by execve killing subsidiary threads.",
		SITkill:    "Sent by tkill.",
		SISigIO:    "Sent by queued SIGIO.",
		SIAsyncIO:  "Sent by AIO completion.",
		SIMesgQ:    "Sent by real-time mesq state change.",
		SITimer:    "Sent by timer expiration.",
		SIQueue:    "Sent by sigqueue.",
		SIUser:     "Sent by kill, sigsend.",
		SIKernel:   "Sent by kernel.",
	}
)

// Reason returns why sig was emitted given the si_code of the delivery. It
// never returns an empty string. Fault-specific tables are consulted for the
// signals that define them; positive codes are never ambiguous there. Every
// other signal, and non-positive codes of any signal, use the generic table.
func Reason(sig signal.Signal, code int) string {
	if code > 0 && code != SIKernel {
		if table := tableFor(sig); table != nil {
			return lookup(table, code)
		}
	}
	return lookup(genericReasons, code)
}

func tableFor(sig signal.Signal) map[int]string {
	switch sig {
	case signal.SIGILL:
		return illReasons
	case signal.SIGFPE:
		return fpeReasons
	case signal.SIGSEGV:
		return segvReasons
	case signal.SIGBUS:
		return busReasons
	case signal.SIGTRAP:
		return trapReasons
	case signal.SIGCHLD:
		return cldReasons
	case signal.SIGPOLL:
		return pollReasons
	}
	return nil
}

func lookup(table map[int]string, code int) string {
	if r, ok := table[code]; ok {
		return r
	}
	return Unknown
}
