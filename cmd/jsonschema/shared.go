package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/reoring/jsonschema"
	"github.com/reoring/jsonschema/format"
	"github.com/reoring/jsonschema/internal/config"
	"github.com/reoring/jsonschema/internal/telemetry"
)

// buildCompiler assembles a Compiler from the persistent flags and config
// file, matching the teacher's "load config, then build dependencies"
// PersistentPreRunE shape but collapsed into one helper each command calls.
// It also reports whether validation should stop at the first Issue.
func buildCompiler() (*jsonschema.Compiler, bool, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, false, err
	}

	names := formatList
	if len(names) == 0 {
		names = cfg.Format
	}
	checkers := format.New()
	if len(names) > 0 {
		checkers, err = format.Subset(names)
		if err != nil {
			return nil, false, err
		}
	}

	opts := []jsonschema.Option{jsonschema.WithFormatChecker(checkers)}
	if verbose {
		opts = append(opts, jsonschema.WithLogger(telemetry.New(os.Stderr)))
	}

	c := jsonschema.NewCompiler(opts...)
	return c, failFast || cfg.FailFast, nil
}

func colorize() *color.Color {
	if noColour {
		return color.New()
	}
	return color.New(color.FgRed, color.Bold)
}

func okColor() *color.Color {
	if noColour {
		return color.New()
	}
	return color.New(color.FgGreen, color.Bold)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, colorize().Sprint("error:"), err)
	os.Exit(1)
}
