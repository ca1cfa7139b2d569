package reason

// Values of siginfo_t.si_code. These originate from the Linux kernel's
// include/uapi/asm-generic/siginfo.h.

// Codes that may accompany any signal.
const (
	SIUser     = 0
	SIKernel   = 0x80
	SIQueue    = -1
	SITimer    = -2
	SIMesgQ    = -3
	SIAsyncIO  = -4
	SISigIO    = -5
	SITkill    = -6
	SIDethread = -7
	SIAsyncNL  = -60
)

// SIGILL codes.
const (
	ILLIllOpc = iota + 1
	ILLIllOpn
	ILLIllAdr
	ILLIllTrp
	ILLPrvOpc
	ILLPrvReg
	ILLCoproc
	ILLBadStk
	ILLBadIAddr
)

// SIGFPE codes.
const (
	FPEIntDiv = iota + 1
	FPEIntOvf
	FPEFltDiv
	FPEFltOvf
	FPEFltUnd
	FPEFltRes
	FPEFltInv
	FPEFltSub

	FPEFltUnk   = 14
	FPECondTrap = 15
)

// SIGSEGV codes.
const (
	SEGVMapErr = iota + 1
	SEGVAccErr
	SEGVBndErr
	SEGVPkuErr
	SEGVAccADI
	SEGVADIDErr
	SEGVADIPErr
	SEGVMTEAErr
	SEGVMTESErr
	SEGVCPErr
)

// SIGBUS codes.
const (
	BUSAdrAln = iota + 1
	BUSAdrErr
	BUSObjErr
	BUSMCEErrAR
	BUSMCEErrAO
)

// SIGTRAP codes.
const (
	TRAPBrkpt = iota + 1
	TRAPTrace
	TRAPBranch
	TRAPHwBkpt
	TRAPUnk
)

// SIGCHLD codes.
const (
	CLDExited = iota + 1
	CLDKilled
	CLDDumped
	CLDTrapped
	CLDStopped
	CLDContinued
)

// SIGIO/SIGPOLL codes.
const (
	POLLIn = iota + 1
	POLLOut
	POLLMsg
	POLLErr
	POLLPri
	POLLHup
)
