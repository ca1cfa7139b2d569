package library

import (
	"testing"
	"time"

	"github.com/dagu-org/psig/internal/callback"
	"github.com/dagu-org/psig/internal/logger"
	"github.com/dagu-org/psig/internal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_OSRaise(t *testing.T) {
	l := New(WithLogger(logger.NewLogger(logger.WithQuiet())))
	require.True(t, l.Init())
	defer l.Shutdown()

	got := make(chan callback.Info, 4)
	cb := callback.New(func(info callback.Info) {
		select {
		case got <- info:
		default:
		}
	})
	require.True(t, l.Callbacks().HookOnSignal(signal.SIGUSR1, cb))

	require.NoError(t, l.Raise(signal.SIGUSR1))
	select {
	case info := <-got:
		assert.Equal(t, signal.SIGUSR1, info.Signal)
		assert.Equal(t, callback.CodeUnavailable, info.Code)
	case <-time.After(5 * time.Second):
		t.Fatal("SIGUSR1 was not dispatched")
	}

	require.NoError(t, l.Raise(signal.SIGRTMIN_1))
	require.Eventually(t, func() bool {
		return l.Deliveries(signal.SIGRTMIN_1) == 1
	}, 5*time.Second, 10*time.Millisecond)

	// Raising a signal nobody hooked invokes nothing.
	require.NoError(t, l.Raise(signal.SIGUSR2))
	require.Eventually(t, func() bool {
		return l.Deliveries(signal.SIGUSR2) == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Empty(t, got)
}

func TestLibrary_OSDefaultIgnoredSignalsDispatch(t *testing.T) {
	l := New(WithLogger(logger.NewLogger(logger.WithQuiet())))
	require.True(t, l.Init())
	defer l.Shutdown()

	for _, sig := range []signal.Signal{signal.SIGWINCH, signal.SIGCHLD} {
		t.Run(sig.Name(), func(t *testing.T) {
			got := make(chan signal.Signal, 1)
			cb := callback.New(func(info callback.Info) {
				select {
				case got <- info.Signal:
				default:
				}
			})
			require.True(t, l.Callbacks().HookOnSignal(sig, cb))
			defer l.Callbacks().UnhookFromAll(cb)

			require.NoError(t, l.Raise(sig))
			select {
			case s := <-got:
				assert.Equal(t, sig, s)
			case <-time.After(5 * time.Second):
				t.Fatalf("%s was not dispatched", sig.Name())
			}
			assert.Equal(t, signal.Ignore, l.Current(sig))
			assert.GreaterOrEqual(t, l.Deliveries(sig), uint64(1))
		})
	}
}

func TestDefault(t *testing.T) {
	require.Same(t, Default(), Default())
	assert.Equal(t, "POSIX Signals Library", Description())

	require.True(t, Init())
	require.True(t, Init())
	assert.True(t, IsRunning())
	Shutdown()
	assert.False(t, IsRunning())
	Shutdown()
	assert.False(t, IsRunning())
}
