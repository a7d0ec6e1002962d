// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"git.lukeshu.com/go/lowmemjson"

	"github.com/jonturner53/grafalgo-go/pkg/forest"
)

// parseLabelKey splits a "label:key" token, e.g. "a:3.5".
func parseLabelKey(tok string) (label string, key float32, err error) {
	i := strings.LastIndexByte(tok, ':')
	if i < 0 {
		return "", 0, fmt.Errorf("expected label:key, got %q", tok)
	}
	label, keyStr := tok[:i], tok[i+1:]
	k, err := strconv.ParseFloat(keyStr, 32)
	if err != nil {
		return "", 0, fmt.Errorf("bad key in %q: %w", tok, err)
	}
	return label, float32(k), nil
}

// statsFields turns a forest.Stats into the sparse map xlog.TraceCounters
// wants, and doubles as the shape written out by --stats-json.
func statsFields(s forest.Stats) map[string]uint64 {
	return map[string]uint64{
		"steps":             s.Steps,
		"rotations":         s.Rotations,
		"meld_steps":        s.MeldSteps,
		"decrease_steps":    s.DecreaseSteps,
		"purge_steps":       s.PurgeSteps,
		"consolidate_steps": s.ConsolidateSteps,
	}
}

func writeJSON(w io.Writer, obj any) error {
	buf := bufio.NewWriter(w)
	if err := lowmemjson.Encode(&lowmemjson.ReEncoder{
		Out:                   buf,
		Indent:                "  ",
		ForceTrailingNewlines: true,
	}, obj); err != nil {
		return err
	}
	return buf.Flush()
}
