// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func groveRanks(h *FibHeaps, grove Handle) []int32 {
	var ranks []int32
	u := grove
	for {
		ranks = append(ranks, h.Rank(u))
		u = h.NextSibling(u)
		if u == grove {
			break
		}
	}
	return ranks
}

// TestFibHeapsDeleteminScenario is the "FibHeaps delete-min" scenario:
// insert keys 5,2,8,1,9,3,7,4,6 in order, then deletemin must return
// the node holding key 1 and leave a grove of all-distinct ranks whose
// first sibling holds key 2.
func TestFibHeapsDeleteminScenario(t *testing.T) {
	h := NewFibHeaps(9)
	keys := []float32{5, 2, 8, 1, 9, 3, 7, 4, 6}
	var grove Handle
	for u := Handle(1); u <= 9; u++ {
		grove = h.Insert(u, grove, keys[u-1])
	}
	require.Equal(t, "", h.Verify())
	require.Equal(t, float32(1), h.Key(grove)) // handle 4 holds key 1, tracked as grove head

	removed, newGrove := h.Deletemin(grove)
	require.Equal(t, Handle(4), removed)
	require.Equal(t, float32(1), h.Key(removed))
	require.Equal(t, "", h.Verify())

	require.Equal(t, float32(2), h.Key(h.Findmin(newGrove)))
	ranks := groveRanks(h, newGrove)
	seen := make(map[int32]bool)
	for _, r := range ranks {
		require.False(t, seen[r], "duplicate rank %d in grove", r)
		seen[r] = true
	}
}

func TestFibHeapsChangekeyCascadingCut(t *testing.T) {
	h := NewFibHeaps(9)
	keys := []float32{5, 2, 8, 1, 9, 3, 7, 4, 6}
	var grove Handle
	for u := Handle(1); u <= 9; u++ {
		grove = h.Insert(u, grove, keys[u-1])
	}
	_, grove = h.Deletemin(grove)
	// lower some non-root key below its parent to force a cut.
	var leaf Handle
	for u := Handle(1); u <= 9; u++ {
		if u != 4 && !h.IsRoot(u) {
			leaf = u
			break
		}
	}
	require.NotZero(t, leaf)
	grove = h.Changekey(leaf, grove, -1)
	require.Equal(t, "", h.Verify())
	require.Equal(t, float32(-1), h.Key(h.Findmin(grove)))
}

func TestFibHeapsToStringFromStringRoundTrip(t *testing.T) {
	h := NewFibHeaps(5)
	var grove Handle
	for u := Handle(1); u <= 5; u++ {
		grove = h.Insert(u, grove, float32(6-u))
	}
	s := h.ToString(0)

	h2 := NewFibHeaps(5)
	require.True(t, h2.FromString(s))
	require.Equal(t, "", h2.Verify())
	for u := Handle(1); u <= 5; u++ {
		require.Equal(t, h.Key(u), h2.Key(u))
	}
}
