package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dagu-org/psig/internal/callback"
	"github.com/dagu-org/psig/internal/library"
	"github.com/dagu-org/psig/internal/logger"
	"github.com/dagu-org/psig/internal/signal"
)

func Raise() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "raise [flags] <signal>...",
			Short: "Raise signals on this process and report their dispatch",
			Long: `Initialize the signal library, then send each signal, in order, to the
psig process itself and wait for the registered callback to observe it.
Signals are named as listed by "psig signals" (SIGINT, INT, SIGRTMIN+3).
SIGKILL and SIGSTOP cannot be caught and are refused.

Example:
  psig raise SIGUSR1 SIGRTMIN+1
  psig raise --timeout 5s TERM
`,
			Args: cobra.MinimumNArgs(1),
		}, []commandLineFlag{timeoutFlag}, runRaise,
	)
}

func runRaise(ctx *Context, args []string) error {
	timeoutStr, err := ctx.StringParam("timeout")
	if err != nil {
		return err
	}
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return fmt.Errorf("invalid timeout %q", timeoutStr)
	}

	sigs := make([]signal.Signal, 0, len(args))
	for _, arg := range args {
		sig, err := signal.Parse(arg)
		if err != nil {
			return err
		}
		if !sig.IsHookable() {
			return fmt.Errorf("%s cannot be caught", sig.Name())
		}
		sigs = append(sigs, sig)
	}

	lib := library.New(
		library.WithLogger(logger.FromContext(ctx)),
		library.WithQueueSize(ctx.Config.QueueSize),
	)
	w := newWatcher(lib, ctx.Command.OutOrStdout(), nil, 0)
	if !lib.Init() {
		return errors.New("failed to install signal handlers")
	}
	defer lib.Shutdown()
	if !lib.Callbacks().Hook(callback.Named("raise", w.record), signal.MaskOf(sigs...)) {
		return errors.New("no free callback slot")
	}

	for i, sig := range sigs {
		if err := lib.Raise(sig); err != nil {
			return err
		}
		if err := w.await(sig, timeout); err != nil {
			return err
		}
		w.print(i+1, callback.Info{Signal: sig, Code: callback.CodeUnavailable})
		logger.Debug(ctx, "Signal dispatched", "signal", sig.Name(), "raw", sig.Raw())
	}
	return nil
}

// await waits for a delivery of sig, discarding deliveries of other signals.
func (w *watcher) await(sig signal.Signal, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case info := <-w.events:
			if info.Signal == sig {
				return nil
			}
		case <-timer.C:
			return fmt.Errorf("%s was not dispatched within %s", sig.Name(), timeout)
		}
	}
}
