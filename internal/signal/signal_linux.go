package signal

import "golang.org/x/sys/unix"

// See https://man7.org/linux/man-pages/man7/signal.7.html

// Standard signals, in Linux numbering order.
const (
	SIGHUP Signal = iota
	SIGINT
	SIGQUIT
	SIGILL
	SIGTRAP
	SIGABRT
	SIGBUS
	SIGFPE
	SIGKILL
	SIGUSR1
	SIGSEGV
	SIGUSR2
	SIGPIPE
	SIGALRM
	SIGTERM
	SIGSTKFLT
	SIGCHLD
	SIGCONT
	SIGSTOP
	SIGTSTP
	SIGTTIN
	SIGTTOU
	SIGURG
	SIGXCPU
	SIGXFSZ
	SIGVTALRM
	SIGPROF
	SIGWINCH
	SIGIO
	SIGPWR
	SIGSYS

	StandardCount = int(SIGSYS) + 1
)

// Common aliases.
const (
	SIGIOT    = SIGABRT
	SIGCLD    = SIGCHLD
	SIGPOLL   = SIGIO
	SIGUNUSED = SIGSYS
)

// RTBase is the raw number of SIGRTMIN as seen by applications. The kernel
// starts the window at 32, the C library keeps the first two for itself.
const RTBase = 34

type standardInfo struct {
	raw         int
	disposition Disposition
	name        string
	desc        string
}

var standardSignals = [StandardCount]standardInfo{
	SIGHUP:    {int(unix.SIGHUP), Terminate, "SIGHUP", "Terminal Hang-Up / Process Death Detected"},
	SIGINT:    {int(unix.SIGINT), Terminate, "SIGINT", "User Interrupt (Ctrl+C)"},
	SIGQUIT:   {int(unix.SIGQUIT), CoreDump, "SIGQUIT", "Quit from keyboard"},
	SIGILL:    {int(unix.SIGILL), CoreDump, "SIGILL", "Illegal Instruction"},
	SIGTRAP:   {int(unix.SIGTRAP), CoreDump, "SIGTRAP", "Trace / Breakpoint trap"},
	SIGABRT:   {int(unix.SIGABRT), CoreDump, "SIGABRT", "Abort signal"},
	SIGBUS:    {int(unix.SIGBUS), CoreDump, "SIGBUS", "Bus error (bad memory access)"},
	SIGFPE:    {int(unix.SIGFPE), CoreDump, "SIGFPE", "Erroneous arithmetic operation"},
	SIGKILL:   {int(unix.SIGKILL), Terminate, "SIGKILL", "Kill signal"},
	SIGUSR1:   {int(unix.SIGUSR1), Terminate, "SIGUSR1", "User-defined signal 1"},
	SIGSEGV:   {int(unix.SIGSEGV), CoreDump, "SIGSEGV", "Invalid memory reference (Segmentation Fault)"},
	SIGUSR2:   {int(unix.SIGUSR2), Terminate, "SIGUSR2", "User-defined signal 2"},
	SIGPIPE:   {int(unix.SIGPIPE), Terminate, "SIGPIPE", "Broken pipe: write to pipe with no readers"},
	SIGALRM:   {int(unix.SIGALRM), Terminate, "SIGALRM", "Timer signal"},
	SIGTERM:   {int(unix.SIGTERM), Terminate, "SIGTERM", "Termination signal"},
	SIGSTKFLT: {int(unix.SIGSTKFLT), Terminate, "SIGSTKFLT", "Stack fault on coprocessor"},
	SIGCHLD:   {int(unix.SIGCHLD), Ignore, "SIGCHLD", "Child stopped, terminated, or continued"},
	SIGCONT:   {int(unix.SIGCONT), Continue, "SIGCONT", "Continue if stopped"},
	SIGSTOP:   {int(unix.SIGSTOP), Stop, "SIGSTOP", "Stop process"},
	SIGTSTP:   {int(unix.SIGTSTP), Stop, "SIGTSTP", "Stop typed at terminal"},
	SIGTTIN:   {int(unix.SIGTTIN), Stop, "SIGTTIN", "Terminal input for background process"},
	SIGTTOU:   {int(unix.SIGTTOU), Stop, "SIGTTOU", "Terminal output for background process"},
	SIGURG:    {int(unix.SIGURG), Ignore, "SIGURG", "Urgent condition on socket"},
	SIGXCPU:   {int(unix.SIGXCPU), CoreDump, "SIGXCPU", "CPU time limit exceeded"},
	SIGXFSZ:   {int(unix.SIGXFSZ), CoreDump, "SIGXFSZ", "File size limit exceeded"},
	SIGVTALRM: {int(unix.SIGVTALRM), Terminate, "SIGVTALRM", "Virtual alarm clock"},
	SIGPROF:   {int(unix.SIGPROF), Terminate, "SIGPROF", "Profiling timer expired"},
	SIGWINCH:  {int(unix.SIGWINCH), Ignore, "SIGWINCH", "Window resize signal"},
	SIGIO:     {int(unix.SIGIO), Terminate, "SIGIO", "I/O now possible"},
	SIGPWR:    {int(unix.SIGPWR), Terminate, "SIGPWR", "Power failure (System V)"},
	SIGSYS:    {int(unix.SIGSYS), CoreDump, "SIGSYS", "Bad system call (SVr4)"},
}

var aliases = map[string]Signal{
	"SIGIOT":    SIGIOT,
	"SIGCLD":    SIGCLD,
	"SIGPOLL":   SIGPOLL,
	"SIGUNUSED": SIGUNUSED,
}

type realTimeInfo struct {
	name string
	desc string
}

var realTimeSignals = [RealTimeCount]realTimeInfo{
	{"SIGRTMIN", "Real-time signal 0"},
	{"SIGRTMIN + 1", "Real-time signal 1"},
	{"SIGRTMIN + 2", "Real-time signal 2"},
	{"SIGRTMIN + 3", "Real-time signal 3"},
	{"SIGRTMIN + 4", "Real-time signal 4"},
	{"SIGRTMIN + 5", "Real-time signal 5"},
	{"SIGRTMIN + 6", "Real-time signal 6"},
	{"SIGRTMIN + 7", "Real-time signal 7"},
	{"SIGRTMIN + 8", "Real-time signal 8"},
	{"SIGRTMIN + 9", "Real-time signal 9"},
	{"SIGRTMIN + 10", "Real-time signal 10"},
	{"SIGRTMIN + 11", "Real-time signal 11"},
	{"SIGRTMIN + 12", "Real-time signal 12"},
	{"SIGRTMIN + 13", "Real-time signal 13"},
	{"SIGRTMIN + 14", "Real-time signal 14"},
	{"SIGRTMIN + 15", "Real-time signal 15"},
	{"SIGRTMAX - 14", "Real-time signal 16"},
	{"SIGRTMAX - 13", "Real-time signal 17"},
	{"SIGRTMAX - 12", "Real-time signal 18"},
	{"SIGRTMAX - 11", "Real-time signal 19"},
	{"SIGRTMAX - 10", "Real-time signal 20"},
	{"SIGRTMAX - 9", "Real-time signal 21"},
	{"SIGRTMAX - 8", "Real-time signal 22"},
	{"SIGRTMAX - 7", "Real-time signal 23"},
	{"SIGRTMAX - 6", "Real-time signal 24"},
	{"SIGRTMAX - 5", "Real-time signal 25"},
	{"SIGRTMAX - 4", "Real-time signal 26"},
	{"SIGRTMAX - 3", "Real-time signal 27"},
	{"SIGRTMAX - 2", "Real-time signal 28"},
	{"SIGRTMAX - 1", "Real-time signal 29"},
	{"SIGRTMAX", "Real-time signal 30"},
}
