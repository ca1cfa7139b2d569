package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dagu-org/psig/internal/signal"
	"github.com/dagu-org/psig/internal/signal/reason"
)

func Reason() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "reason [flags] <signal> <code>",
			Short: "Explain why a signal was emitted",
			Long: `Decode the si_code carried by a delivery of <signal> into a human
readable reason. The code may be given in decimal or with a 0x prefix.

Example:
  psig reason SIGSEGV 1
  psig reason SIGCHLD 3
  psig reason SIGUSR1 0x80
`,
			Args: cobra.ExactArgs(2),
		}, nil, runReason,
	)
}

func runReason(ctx *Context, args []string) error {
	sig, err := signal.Parse(args[0])
	if err != nil {
		return err
	}
	code, err := strconv.ParseInt(args[1], 0, 32)
	if err != nil {
		return fmt.Errorf("invalid code %q: %w", args[1], err)
	}

	_, err = fmt.Fprintf(ctx.Command.OutOrStdout(), "%s: %s\n", sig.Name(), reason.Reason(sig, int(code)))
	return err
}
