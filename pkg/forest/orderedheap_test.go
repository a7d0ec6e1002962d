// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func orderedLabels(o *OrderedHeaps, root Handle) []string {
	if root == 0 {
		return nil
	}
	var got []string
	for u := o.First(root); u != 0; u = o.Next(u, root) {
		got = append(got, o.label(u))
	}
	return got
}

// TestOrderedHeapsDivideScenario is the "OrderedHeaps divide" scenario:
// a..f with keys 3,1,4,1,5,9 in that infix order; divide(c) must split
// into h1={a,b} and h2={c,d,e,f}, each still findable by min, and
// add2keys on h2 must shift its observable keys.
func TestOrderedHeapsDivideScenario(t *testing.T) {
	o := NewOrderedHeaps(6)
	keys := []float32{3, 1, 4, 1, 5, 9} // a b c d e f
	var root Handle
	var last Handle
	for u := Handle(1); u <= 6; u++ {
		root = o.InsertAfter(u, last, keys[u-1], root)
		last = u
	}
	require.Equal(t, "", o.Verify())
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, orderedLabels(o, root))

	h1, h2 := o.Divide(3, root) // c == handle 3
	require.Equal(t, "", o.Verify())
	require.Equal(t, []string{"a", "b"}, orderedLabels(o, h1))
	require.Equal(t, []string{"c", "d", "e", "f"}, orderedLabels(o, h2))

	require.Equal(t, Handle(2), o.Findmin(h1)) // b, key 1
	require.Equal(t, Handle(4), o.Findmin(h2)) // d, key 1

	o.Add2keys(10, h2)
	require.Equal(t, "", o.Verify())
	require.Equal(t, Handle(4), o.Findmin(h2))
	require.Equal(t, float32(11), o.Key(o.Findmin(h2), h2))
}

func TestOrderedHeapsInsertAfterAndDelete(t *testing.T) {
	o := NewOrderedHeaps(5)
	var root Handle
	var last Handle
	for u := Handle(1); u <= 5; u++ {
		root = o.InsertAfter(u, last, float32(u), root)
		last = u
	}
	require.Equal(t, "", o.Verify())
	root = o.Delete(3, root)
	require.Equal(t, "", o.Verify())
	require.Equal(t, []string{"a", "b", "d", "e"}, orderedLabels(o, root))
	require.Equal(t, Handle(1), o.Findmin(root))
}

func TestOrderedHeapsRoundTrip(t *testing.T) {
	o := NewOrderedHeaps(4)
	var root Handle
	var last Handle
	for u := Handle(1); u <= 4; u++ {
		root = o.InsertAfter(u, last, float32(5-u), root)
		last = u
	}
	s := o.ToString(0x4)

	o2 := NewOrderedHeaps(4)
	require.True(t, o2.FromString(s))
	require.Equal(t, "", o2.Verify())
}
