package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reoring/jsonschema/internal/jsondoc"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <schema-file>",
		Short: "Compile a schema and report whether it builds cleanly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runCheck(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := jsondoc.Decode(data)
	if err != nil {
		return err
	}
	compiler, _, err := buildCompiler()
	if err != nil {
		return err
	}
	if _, err := compiler.Compile(ctx, path, doc); err != nil {
		return err
	}
	fmt.Println(okColor().Sprint("ok"), path, "compiles cleanly")
	return nil
}
