package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <schema-file> <instance-file>",
		Short: "Revalidate an instance every time the schema or instance file changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), args[0], args[1])
		},
	}
	return cmd
}

func runWatch(ctx context.Context, schemaPath, instancePath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, dir := range uniqueDirs(schemaPath, instancePath) {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	runOnce := func() {
		if _, err := validateOnce(ctx, schemaPath, instancePath); err != nil {
			fmt.Fprintln(os.Stderr, colorize().Sprint("error:"), err)
		}
	}
	runOnce()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, colorize().Sprint("watch error:"), err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != schemaPath && ev.Name != instancePath {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			runOnce()
		}
	}
}

func uniqueDirs(paths ...string) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range paths {
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	return out
}
