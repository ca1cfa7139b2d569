package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dagu-org/psig/internal/build"
	"github.com/dagu-org/psig/internal/cmd"
)

var rootCmd = &cobra.Command{
	Use:   build.Slug,
	Short: "psig inspects and exercises POSIX signal handling",
	Long: `psig inspects and exercises POSIX signal handling.

It lists the canonical signal enumeration with default dispositions, decodes
emission reasons, sends signals to processes, and watches deliveries through
the signal library's callback registry.
`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(cmd.Signals())
	rootCmd.AddCommand(cmd.Reason())
	rootCmd.AddCommand(cmd.Watch())
	rootCmd.AddCommand(cmd.Raise())
	rootCmd.AddCommand(cmd.Version())

	build.Version = version
}

var version = "0.0.0"
