// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/jonturner53/grafalgo-go/internal/xlog"
	"github.com/jonturner53/grafalgo-go/pkg/forest"
)

func init() {
	var statsJSON bool
	var dump bool

	cmd := &cobra.Command{
		Use:   "keyset label:key [label:key...]",
		Short: "Insert label:key items into a KeySets and print its text form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			k := forest.NewKeySets(forest.Handle(len(args)))

			var treeRoot forest.Handle
			for i, tok := range args {
				_, key, err := parseLabelKey(tok)
				if err != nil {
					return err
				}
				treeRoot = k.Insert(forest.Handle(i+1), treeRoot, key)
			}

			logger := dlog.GetLogger(ctx)
			xlog.TraceCounters(logger, "keyset build", statsFields(k.GetStats()))

			fmt.Println(k.ToString(0x4))
			if msg := k.Verify(); msg != "" {
				return fmt.Errorf("verify failed: %s", msg)
			}

			if dump {
				cfg := spew.NewDefaultConfig()
				cfg.DisablePointerAddresses = true
				cfg.Dump(k)
			}

			if statsJSON {
				return writeJSON(os.Stdout, statsFields(k.GetStats()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&statsJSON, "stats-json", false, "emit operation-counter stats as JSON")
	cmd.Flags().BoolVar(&dump, "dump", false, "spew-dump the raw KeySets arrays to stdout")
	root.AddCommand(cmd)
}
