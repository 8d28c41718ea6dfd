package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/reoring/jsonschema"
	"github.com/reoring/jsonschema/internal/jsondoc"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schema-file> <instance-file>",
		Short: "Validate an instance document against a schema",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid, err := validateOnce(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if !valid {
				os.Exit(1)
			}
			return nil
		},
	}
	return cmd
}

// validateOnce compiles schemaPath and validates instancePath against it,
// printing either an "ok" line or every Issue found. It reports whether the
// instance was valid so callers decide for themselves whether to exit
// (a one-shot `validate` run) or keep going (the `watch` loop).
func validateOnce(ctx context.Context, schemaPath, instancePath string) (bool, error) {
	schema, instance, rawInstance, failFast, err := loadPair(ctx, schemaPath, instancePath)
	if err != nil {
		return false, err
	}

	if failFast {
		var issues jsonschema.Issues
		func() {
			defer func() {
				if r := recover(); r != nil {
					var ok bool
					issues, ok = r.(jsonschema.Issues)
					if !ok {
						panic(r)
					}
				}
			}()
			schema.ValidateWithHandler(instance, jsonschema.NewThrowingHandler())
		}()
		if issues != nil {
			printIssues(issues, rawInstance)
			return false, nil
		}
		fmt.Println(okColor().Sprint("ok"), instancePath, "is valid")
		return true, nil
	}

	if err := schema.Validate(instance); err != nil {
		issues, ok := err.(jsonschema.Issues)
		if !ok {
			return false, err
		}
		printIssues(issues, rawInstance)
		return false, nil
	}
	fmt.Println(okColor().Sprint("ok"), instancePath, "is valid")
	return true, nil
}

func loadPair(ctx context.Context, schemaPath, instancePath string) (schema *jsonschema.Schema, instance any, rawInstance []byte, failFast bool, err error) {
	schemaData, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, nil, nil, false, err
	}
	instanceData, err := os.ReadFile(instancePath)
	if err != nil {
		return nil, nil, nil, false, err
	}
	schemaDoc, err := jsondoc.Decode(schemaData)
	if err != nil {
		return nil, nil, nil, false, err
	}
	instanceDoc, err := jsondoc.Decode(instanceData)
	if err != nil {
		return nil, nil, nil, false, err
	}
	compiler, ff, err := buildCompiler()
	if err != nil {
		return nil, nil, nil, false, err
	}
	s, err := compiler.Compile(ctx, schemaPath, schemaDoc)
	if err != nil {
		return nil, nil, nil, false, err
	}
	return s, instanceDoc, instanceData, ff, nil
}

// printIssues prints each Issue with the offending instance fragment,
// located in rawInstance by its JSON Pointer via gjson — a cheap way to
// show users exactly what failed without re-walking the decoded tree.
func printIssues(issues jsonschema.Issues, rawInstance []byte) {
	red := colorize()
	for _, iss := range issues {
		fragment := gjson.GetBytes(rawInstance, gjsonPath(iss.Path))
		fmt.Fprintf(os.Stderr, "%s %s at %s: %s\n", red.Sprint("fail"), iss.Kind, issuePath(iss.Path), iss.Message)
		if fragment.Exists() {
			fmt.Fprintf(os.Stderr, "      %s\n", fragment.Raw)
		}
	}
}

func issuePath(p string) string {
	if p == "" {
		return "(root)"
	}
	return p
}

// gjsonPath converts a JSON Pointer ("/items/0/name") into gjson's dotted
// path syntax ("items.0.name").
func gjsonPath(pointer string) string {
	if pointer == "" {
		return "@this"
	}
	out := make([]byte, 0, len(pointer))
	for i := 1; i < len(pointer); i++ {
		c := pointer[i]
		if c == '/' {
			out = append(out, '.')
			continue
		}
		out = append(out, c)
	}
	return string(out)
}
