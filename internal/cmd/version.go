package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dagu-org/psig/internal/build"
	"github.com/dagu-org/psig/internal/library"
)

func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the binary version",
		Long:  `Print the current version of the psig executable.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", build.AppName, build.Version, library.Description())
		},
	}
}
