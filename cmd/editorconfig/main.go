// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// editorconfig prints the properties declared in EditorConfig files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"zombiezen.com/go/log"

	"github.com/yourbase/editorconfig"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool
	c := &cobra.Command{
		Use:   "editorconfig FILE [FILE...]",
		Short: "Print the properties declared in EditorConfig files",
		Long: `editorconfig parses each named file as EditorConfig text and prints
its properties as key=value lines, sorted by key. Keys are printed
lower-cased, as the format requires. Files that do not exist print
nothing. Section headers and glob matching are not interpreted.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			initLogging(verbose)
			err := run(cmd.Context(), cmd.OutOrStdout(), args)
			if err != nil {
				log.Errorf(cmd.Context(), "%v", err)
			}
			return err
		},
	}
	c.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return c
}

func initLogging(verbose bool) {
	minLevel := log.Info
	if verbose {
		minLevel = log.Debug
	}
	log.SetDefault(&log.LevelFilter{
		Min:    minLevel,
		Output: log.New(os.Stderr, "editorconfig: ", 0, nil),
	})
}

func run(ctx context.Context, out io.Writer, paths []string) error {
	for _, path := range paths {
		props, err := editorconfig.ParseFile(ctx, path)
		if err != nil {
			return err
		}
		for _, key := range props.Keys() {
			if len(paths) > 1 {
				fmt.Fprintf(out, "%s:%s=%s\n", path, key, props.Get(key))
			} else {
				fmt.Fprintf(out, "%s=%s\n", key, props.Get(key))
			}
		}
	}
	return nil
}
