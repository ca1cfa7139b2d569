package library

import (
	"testing"

	"github.com/dagu-org/psig/internal/callback"
	"github.com/dagu-org/psig/internal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverride_Rejected(t *testing.T) {
	l, _ := newTestLibrary(t, newFakeSource())

	assert.False(t, l.Override(signal.SIGKILL, signal.Ignore))
	assert.False(t, l.Override(signal.SIGSTOP, signal.Continue))
	assert.False(t, l.Override(signal.SIGINT, signal.Unspecified))
	assert.False(t, l.Override(signal.SIGINT, signal.Disposition(77)))
}

func TestOverride_AlreadyActive(t *testing.T) {
	src := newFakeSource()
	l, _ := newTestLibrary(t, src)

	assert.True(t, l.Override(signal.SIGTERM, signal.Terminate))
	assert.Empty(t, src.resets)
	assert.Equal(t, signal.Terminate, l.Current(signal.SIGTERM))
}

func TestOverride_IgnoreAndReset(t *testing.T) {
	src := newFakeSource()
	l, _ := newTestLibrary(t, src)
	raw := signal.SIGUSR1.Raw()

	require.True(t, l.Override(signal.SIGUSR1, signal.Ignore))
	assert.True(t, src.ignored[raw])
	assert.Equal(t, signal.Ignore, l.Current(signal.SIGUSR1))
	assert.Equal(t, signal.Terminate, signal.SIGUSR1.DefaultDisposition())

	require.True(t, l.Override(signal.SIGUSR1, signal.Ignore))

	l.Reset(signal.SIGUSR1)
	assert.False(t, src.ignored[raw])
	assert.Equal(t, signal.Terminate, l.Current(signal.SIGUSR1))
}

func TestOverride_IgnoreSurvivesInit(t *testing.T) {
	src := newFakeSource()
	l, _ := newTestLibrary(t, src)

	require.True(t, l.Override(signal.SIGHUP, signal.Ignore))
	require.True(t, l.Init())
	assert.True(t, src.ignored[signal.SIGHUP.Raw()])
	assert.False(t, src.ignored[signal.SIGINT.Raw()])

	l.Shutdown()
	assert.Equal(t, signal.Terminate, l.Current(signal.SIGHUP))
}

func TestOverride_EmulatedRequiresRunning(t *testing.T) {
	src := newFakeSource()
	l, _ := newTestLibrary(t, src)

	assert.False(t, l.Override(signal.SIGUSR2, signal.Stop))
	require.True(t, l.Init())
	assert.True(t, l.Override(signal.SIGUSR2, signal.Stop))
	assert.Equal(t, signal.Stop, l.Current(signal.SIGUSR2))
}

func TestOverride_EmulatedActions(t *testing.T) {
	tests := []struct {
		name   string
		sig    signal.Signal
		disp   signal.Disposition
		raised []int
	}{
		{"StopRaisesSIGSTOP", signal.SIGUSR1, signal.Stop, []int{signal.SIGSTOP.Raw()}},
		{"TerminateRaisesSIGTERM", signal.SIGCHLD, signal.Terminate, []int{signal.SIGTERM.Raw()}},
		{"CoreDumpRaisesSIGQUIT", signal.SIGRTMIN, signal.CoreDump, []int{signal.SIGQUIT.Raw()}},
		{"ContinueRaisesNothing", signal.SIGUSR2, signal.Continue, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			l, _ := newTestLibrary(t, src)
			require.True(t, l.Init())
			require.True(t, l.Override(tt.sig, tt.disp))

			ran := false
			require.True(t, l.Callbacks().HookOnSignal(tt.sig, callback.New(func(callback.Info) { ran = true })))

			l.dispatch(Delivery{Raw: tt.sig.Raw()})
			assert.True(t, ran)
			assert.Equal(t, tt.raised, src.raisedSignals())
		})
	}
}

func TestOverride_BackToDefaultWhileRunning(t *testing.T) {
	src := newFakeSource()
	l, _ := newTestLibrary(t, src)
	require.True(t, l.Init())
	raw := signal.SIGWINCH.Raw()
	assert.True(t, src.isHandled(raw))

	require.True(t, l.Override(signal.SIGWINCH, signal.Terminate))
	assert.Equal(t, 2, src.notified[raw])

	// Back to the default: still routed to the dispatcher, not ignored natively.
	require.True(t, l.Override(signal.SIGWINCH, signal.Ignore))
	assert.False(t, src.ignored[raw])
	assert.True(t, src.isHandled(raw))
	assert.Equal(t, 3, src.notified[raw])
	assert.Equal(t, signal.Ignore, l.Current(signal.SIGWINCH))

	require.True(t, l.Override(signal.SIGWINCH, signal.Ignore))
	assert.Equal(t, 3, src.notified[raw])

	l.Reset(signal.SIGWINCH)
	assert.True(t, src.isHandled(raw))
	assert.Equal(t, 4, src.notified[raw])
}

func TestOverride_ExplicitIgnoreWhileRunning(t *testing.T) {
	src := newFakeSource()
	l, _ := newTestLibrary(t, src)
	require.True(t, l.Init())
	raw := signal.SIGUSR1.Raw()

	require.True(t, l.Override(signal.SIGUSR1, signal.Ignore))
	assert.True(t, src.ignored[raw])
	assert.False(t, src.isHandled(raw))

	require.True(t, l.Override(signal.SIGUSR1, signal.Terminate))
	assert.False(t, src.ignored[raw])
	assert.True(t, src.isHandled(raw))
	assert.Equal(t, signal.Terminate, l.Current(signal.SIGUSR1))
}
