package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	logFile    string
	strict     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "sonora",
		Short:         "Sonora manages visual themes for the background shader, fluid simulation and UI palette",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file (default $XDG_CONFIG_HOME/sonora/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to a rotated file instead of stderr")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "Reject edits that produce out-of-range values")

	cmd.AddCommand(newPresetsCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newCustomizeCmd(flags))
	cmd.AddCommand(newModelCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
