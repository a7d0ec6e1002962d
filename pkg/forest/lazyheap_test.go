// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func freeListLen(lh *LazyHeaps) int {
	n := 0
	for d := lh.freeDummy; d != 0; d = lh.right[d] {
		n++
	}
	return n
}

// TestLazyHeapsRetireFindminScenario is the "LazyHeaps retire+findmin"
// scenario: build a heap of keys 1..10, retire its minimum, and check
// that a second findmin surfaces the next-smallest key.
func TestLazyHeapsRetireFindminScenario(t *testing.T) {
	lh := NewLazyHeaps(10)
	var root Handle
	for u := Handle(1); u <= 10; u++ {
		root = lh.Insert(u, root, float32(u))
	}
	require.Equal(t, "", lh.Verify())

	min1 := lh.Findmin(root)
	root = min1
	require.Equal(t, Handle(1), min1)
	require.Equal(t, float32(1), lh.Key(min1))
	require.Equal(t, 10, freeListLen(lh)) // purge returns every dummy to the pool

	lh.Retire(min1)
	min2 := lh.Findmin(root)
	require.Equal(t, Handle(2), min2)
	require.Equal(t, float32(2), lh.Key(min2))
	require.Equal(t, "", lh.Verify())
	require.True(t, lh.Retired(min1) == false) // purged, flag cleared
}

func TestLazyHeapsMeldIsLazyUntilFindmin(t *testing.T) {
	lh := NewLazyHeaps(4)
	var root Handle
	for u := Handle(1); u <= 4; u++ {
		root = lh.Insert(u, root, float32(5-u))
	}
	// a dummy should be the observable root before any findmin purges it.
	require.True(t, lh.isDummy(root))
	purged := lh.Findmin(root)
	require.False(t, lh.isDummy(purged))
	require.Equal(t, float32(1), lh.Key(purged))
}

func TestLazyHeapsDeleteminRemovesObservedMin(t *testing.T) {
	lh := NewLazyHeaps(5)
	var root Handle
	for u := Handle(1); u <= 5; u++ {
		root = lh.Insert(u, root, float32(u))
	}
	removed, newRoot := lh.Deletemin(root)
	require.Equal(t, Handle(1), removed)
	require.Equal(t, "", lh.Verify())
	got := lh.Findmin(newRoot)
	require.Equal(t, float32(2), lh.Key(got))
}
