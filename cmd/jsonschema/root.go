package main

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	noColour   bool
	failFast   bool
	verbose    bool
	formatList []string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jsonschema",
		Short:         "Compile and validate JSON Schema draft-07 documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to .jsonschema config file")
	cmd.PersistentFlags().BoolVar(&noColour, "no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolVar(&failFast, "fail-fast", false, "stop at the first validation issue")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log compiler and resolver activity to stderr")
	cmd.PersistentFlags().StringSliceVar(&formatList, "format", nil, "format checkers to enable (default: all built-ins)")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newWatchCmd())
	return cmd
}
