// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/jonturner53/grafalgo-go/internal/xlog"
	"github.com/jonturner53/grafalgo-go/pkg/forest"
)

func init() {
	var statsJSON bool

	cmd := &cobra.Command{
		Use:   "heap label:key [label:key...]",
		Short: "Insert label:key items into a LeftistHeaps by repeated meld and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			h := forest.NewLeftistHeaps(forest.Handle(len(args)))

			var heap forest.Handle
			for i, tok := range args {
				_, key, err := parseLabelKey(tok)
				if err != nil {
					return err
				}
				heap = h.Insert(forest.Handle(i+1), heap, key)
			}

			logger := dlog.GetLogger(ctx)
			xlog.TraceCounters(logger, "heap build", statsFields(h.GetStats()))

			fmt.Println(h.ToString(0x4))
			if msg := h.Verify(); msg != "" {
				return fmt.Errorf("verify failed: %s", msg)
			}

			min := h.Findmin(heap)
			fmt.Printf("findmin: handle %d (key %g)\n", min, h.Key(min))

			if statsJSON {
				return writeJSON(os.Stdout, statsFields(h.GetStats()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&statsJSON, "stats-json", false, "emit operation-counter stats as JSON")
	root.AddCommand(cmd)
}
