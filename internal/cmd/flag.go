package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type commandLineFlag struct {
	name, shorthand, defaultValue, usage string
	required                             bool
	isBool                               bool
	// bindViper is the configuration key the flag overrides, if any.
	bindViper string
}

var (
	configFlag = commandLineFlag{
		name:      "config",
		shorthand: "c",
		usage:     "config file (default is $XDG_CONFIG_HOME/psig/config.yaml)",
	}
	quietFlag = commandLineFlag{
		name:      "quiet",
		shorthand: "q",
		usage:     "suppress log output",
		isBool:    true,
	}
	debugFlag = commandLineFlag{
		name:      "debug",
		usage:     "enable debug logging",
		isBool:    true,
		bindViper: "debug",
	}
	metricsAddrFlag = commandLineFlag{
		name:      "metrics-addr",
		usage:     "address to serve Prometheus metrics on (disabled when empty)",
		bindViper: "metrics.addr",
	}
	stopOnFlag = commandLineFlag{
		name:      "stop-on",
		usage:     "comma separated signals that end the session (default SIGINT,SIGTERM)",
		bindViper: "watch.stopOn",
	}
	countFlag = commandLineFlag{
		name:         "count",
		shorthand:    "n",
		defaultValue: "0",
		usage:        "exit after this many deliveries (0 means unlimited)",
	}
	timeoutFlag = commandLineFlag{
		name:         "timeout",
		defaultValue: "2s",
		usage:        "how long to wait for each signal to be dispatched",
	}
	dispositionFlag = commandLineFlag{
		name:      "disposition",
		shorthand: "d",
		usage:     "only list signals with this default disposition",
	}
	outputFlag = commandLineFlag{
		name:         "output",
		shorthand:    "o",
		defaultValue: "table",
		usage:        "output format (table, yaml or json)",
	}
	typeFlag = commandLineFlag{
		name:      "type",
		shorthand: "t",
		usage:     "only list signals of this type (standard or real-time)",
	}
)

var defaultFlags = []commandLineFlag{configFlag, quietFlag, debugFlag}

func initFlags(cmd *cobra.Command, additionalFlags ...commandLineFlag) {
	flags := append(append([]commandLineFlag{}, defaultFlags...), additionalFlags...)
	for _, flag := range flags {
		if flag.isBool {
			cmd.Flags().BoolP(flag.name, flag.shorthand, flag.defaultValue == "true", flag.usage)
		} else {
			cmd.Flags().StringP(flag.name, flag.shorthand, flag.defaultValue, flag.usage)
		}
		if flag.required {
			if err := cmd.MarkFlagRequired(flag.name); err != nil {
				fmt.Printf("failed to mark flag %s as required: %v\n", flag.name, err)
			}
		}
	}
}

// bindFlags binds the flags that override configuration keys to v.
func bindFlags(v *viper.Viper, cmd *cobra.Command, additionalFlags ...commandLineFlag) error {
	flags := append(append([]commandLineFlag{}, defaultFlags...), additionalFlags...)
	for _, flag := range flags {
		if flag.bindViper == "" {
			continue
		}
		if err := v.BindPFlag(flag.bindViper, cmd.Flags().Lookup(flag.name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag.name, err)
		}
	}
	return nil
}
