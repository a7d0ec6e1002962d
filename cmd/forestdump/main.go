// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Command forestdump builds forest/heap structures from a command line
// description and prints their canonical text form.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/jonturner53/grafalgo-go/internal/xlog"
)

var verbosity = xlog.LevelFlag{Level: dlog.LogLevelInfo}

var root = &cobra.Command{
	Use:   "forestdump {[flags]|SUBCOMMAND}",
	Short: "Build and dump forest/heap structures",

	SilenceErrors: true,
	SilenceUsage:  true,

	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		ctx := dlog.WithLogger(context.Background(), xlog.New(os.Stderr, verbosity.Level))
		cmd.SetContext(ctx)
		return nil
	},
}

func init() {
	root.PersistentFlags().Var(&verbosity, "verbosity", "set the verbosity (error|warn|info|debug|trace)")
}

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %v\n", root.CommandPath(), err)
		os.Exit(1)
	}
}
