package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/spf13/cobra"

	"github.com/dagu-org/psig/internal/callback"
	"github.com/dagu-org/psig/internal/library"
	"github.com/dagu-org/psig/internal/logger"
	"github.com/dagu-org/psig/internal/signal"
	"github.com/dagu-org/psig/internal/signal/reason"
)

func Watch() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "watch [flags]",
			Short: "Install handlers and print every delivered signal",
			Long: `Initialize the signal library, hook a callback on every signal and print
each delivery with its default disposition and emission reason.

The session ends when one of the --stop-on signals arrives, after --count
deliveries, or when the process is asked to stop by its context.

Example:
  psig watch
  psig watch --stop-on SIGUSR2 --metrics-addr 127.0.0.1:9464
  psig watch --count 3
`,
			Args: cobra.NoArgs,
		}, []commandLineFlag{metricsAddrFlag, stopOnFlag, countFlag}, runWatch,
	)
}

// watchEvents is the capacity of the buffer between the callback and the
// printer. Deliveries that find it full are counted and dropped.
const watchEvents = 256

// watchMask leaves out SIGURG, which the Go runtime sends to itself for
// goroutine preemption.
var watchMask = signal.MaskAll().Without(signal.MaskOf(signal.SIGURG))

func runWatch(ctx *Context, _ []string) error {
	countStr, err := ctx.StringParam("count")
	if err != nil {
		return err
	}
	limit, err := strconv.Atoi(countStr)
	if err != nil || limit < 0 {
		return fmt.Errorf("invalid count %q", countStr)
	}

	lib := library.New(
		library.WithLogger(logger.FromContext(ctx)),
		library.WithQueueSize(ctx.Config.QueueSize),
	)
	w := newWatcher(lib, ctx.Command.OutOrStdout(), ctx.Config.Watch.StopOn, limit)
	return w.run(ctx, ctx.Config.Metrics.Addr)
}

type watcher struct {
	lib     *library.Library
	out     io.Writer
	stopOn  []signal.Signal
	limit   int
	events  chan callback.Info
	dropped atomic.Uint64
}

func newWatcher(lib *library.Library, out io.Writer, stopOn []signal.Signal, limit int) *watcher {
	return &watcher{
		lib:    lib,
		out:    out,
		stopOn: stopOn,
		limit:  limit,
		events: make(chan callback.Info, watchEvents),
	}
}

// record runs in dispatch context and must not block.
func (w *watcher) record(info callback.Info) {
	select {
	case w.events <- info:
	default:
		w.dropped.Add(1)
	}
}

func (w *watcher) run(ctx context.Context, metricsAddr string) error {
	if !w.lib.Init() {
		return errors.New("failed to install signal handlers")
	}
	defer w.lib.Shutdown()

	cb := callback.Named("watch", w.record)
	if !w.lib.Callbacks().Hook(cb, watchMask) {
		return errors.New("no free callback slot")
	}

	if metricsAddr != "" {
		stop, err := serveMetrics(ctx, metricsAddr, w.lib)
		if err != nil {
			return err
		}
		defer stop()
	}

	stopMask := signal.MaskOf(w.stopOn...)
	logger.Info(ctx, "Watching signals",
		"stopOn", lo.Map(w.stopOn, func(s signal.Signal, _ int) string { return s.Name() }),
		"buffer", cap(w.events),
	)
	_, _ = fmt.Fprintln(w.out, banner(ctx, os.Getpid()))

	seen := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case info := <-w.events:
			seen++
			w.print(seen, info)
			if stopMask.Has(info.Signal) {
				logger.Info(ctx, "Stop signal received", "signal", info.Signal.Name(), "dropped", w.dropped.Load())
				return nil
			}
			if w.limit > 0 && seen >= w.limit {
				logger.Debug(ctx, "Delivery limit reached", "count", seen, "dropped", w.dropped.Load())
				return nil
			}
		}
	}
}

func (w *watcher) print(n int, info callback.Info) {
	sig := info.Signal
	line := fmt.Sprintf("[%d] %s (%d) %s, default %s", n, sig.Name(), sig.Raw(), signalType(sig), sig.DefaultDisposition())
	if info.Code != callback.CodeUnavailable {
		line += ": " + reason.Reason(sig, info.Code)
	}
	_, _ = dispositionColor(sig.DefaultDisposition()).Fprintln(w.out, line)
}

func dispositionColor(d signal.Disposition) *color.Color {
	switch d {
	case signal.Terminate:
		return color.New(color.FgRed)
	case signal.CoreDump:
		return color.New(color.FgHiRed, color.Bold)
	case signal.Stop:
		return color.New(color.FgYellow)
	case signal.Continue:
		return color.New(color.FgGreen)
	case signal.Ignore:
		return color.New(color.FgBlue)
	default:
		return color.New(color.FgCyan)
	}
}

// banner names the watched process so that signals can be sent to it.
func banner(ctx context.Context, pid int) string {
	line := fmt.Sprintf("Watching pid %d", pid)
	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		logger.Debug(ctx, "Failed to inspect process", "pid", pid, "err", err)
		return line
	}
	if name, err := p.NameWithContext(ctx); err == nil && name != "" {
		line += " (" + name + ")"
	}
	if ppid, err := p.PpidWithContext(ctx); err == nil {
		line += fmt.Sprintf(", parent %d", ppid)
	}
	return line
}
