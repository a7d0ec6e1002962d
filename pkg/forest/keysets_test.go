// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeySetsLookup(t *testing.T) {
	k := NewKeySets(6)
	var root Handle
	keys := []float32{5, 3, 8, 1, 4, 9}
	for u := Handle(1); u <= 6; u++ {
		root = k.Insert(u, root, keys[u-1])
	}
	require.Equal(t, "", k.Verify())
	for u := Handle(1); u <= 6; u++ {
		require.Equal(t, u, k.Lookup(keys[u-1], root))
	}
	require.Equal(t, Handle(0), k.Lookup(42, root))

	s := k.ToString(0x4)
	k2 := NewKeySets(6)
	require.True(t, k2.FromString(s))
	require.Equal(t, "", k2.Verify())
}

func TestDualKeySetsFindMinBoundedBySecondaryWithTieBreak(t *testing.T) {
	d := NewDualKeySets(6)
	var root Handle
	// primary key = position, secondary key has a tie at value 2.
	primary := []float32{1, 2, 3, 4, 5, 6}
	secondary := []float32{9, 2, 7, 2, 3, 1}
	for u := Handle(1); u <= 6; u++ {
		root = d.Insert(u, root, primary[u-1], secondary[u-1])
	}
	require.Equal(t, "", d.Verify())

	// bound = 4 excludes e (5) and f (6); among a..d the minimum
	// secondary key is 2, tied between b and d; infix order favors b.
	got := d.FindMin(root, 4)
	require.Equal(t, Handle(2), got) // "b"

	// bound = 6 includes everyone; global secondary minimum is f's 1.
	got = d.FindMin(root, 6)
	require.Equal(t, Handle(6), got) // "f"

	// bound below every primary key yields no candidate.
	require.Equal(t, Handle(0), d.FindMin(root, 0))
}

func TestDualKeySetsRoundTrip(t *testing.T) {
	d := NewDualKeySets(5)
	var root Handle
	for u := Handle(1); u <= 5; u++ {
		root = d.Insert(u, root, float32(u), float32(5-u))
	}
	s := d.ToString(0x4)

	d2 := NewDualKeySets(5)
	require.True(t, d2.FromString(s))
	require.Equal(t, "", d2.Verify())
	for u := Handle(1); u <= 5; u++ {
		require.Equal(t, d.Key(u), d2.Key(u))
		require.Equal(t, d.Key2(u), d2.Key2(u))
	}
}

func TestDualKeySetsDeleteRefreshesMinKey2(t *testing.T) {
	d := NewDualKeySets(5)
	var root Handle
	secondary := []float32{5, 1, 4, 2, 3}
	for u := Handle(1); u <= 5; u++ {
		root = d.Insert(u, root, float32(u), secondary[u-1])
	}
	// delete the node holding the current global secondary minimum (b, key2=1)
	root = d.Delete(2, root)
	require.Equal(t, "", d.Verify())
	got := d.FindMin(root, 100)
	require.Equal(t, Handle(4), got) // "d" now holds the minimum (2)
}
