// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func infixLabels(h *LeftistHeaps, root Handle) []Handle {
	if root == 0 {
		return nil
	}
	var got []Handle
	for u := h.First(root); u != 0; u = h.Next(u, root) {
		got = append(got, u)
	}
	return got
}

// TestLeftistHeapsMeldScenario is the "Leftist meld" scenario: heapify
// a..d, heapify e..j, then deletemin the second heap's root.
func TestLeftistHeapsMeldScenario(t *testing.T) {
	h := NewLeftistHeaps(10)
	for u := Handle(1); u <= 10; u++ {
		h.Insert(u, 0, float32(u))
	}
	heap1 := h.Heapify([]Handle{1, 2, 3, 4})
	require.Equal(t, "", h.Verify())
	require.Equal(t, []Handle{2, 1, 4, 3}, infixLabels(h, heap1)) // b a d c

	heap2 := h.Heapify([]Handle{5, 6, 7, 8, 9, 10})
	require.Equal(t, "", h.Verify())

	removed, newRoot := h.Deletemin(heap2)
	require.Equal(t, Handle(5), removed) // e
	require.Equal(t, Handle(6), newRoot) // f
	require.Equal(t, "", h.Verify())

	require.Equal(t, []Handle{2, 1, 4, 3}, infixLabels(h, heap1))
	require.Equal(t, []Handle{8, 7, 10, 9, 6}, infixLabels(h, newRoot)) // h g j i f
	require.True(t, h.IsRoot(removed))
	require.True(t, h.Singleton(removed))
	require.Equal(t, float32(5), h.Key(removed))
}

func TestLeftistHeapsFromStringRebuildsRank(t *testing.T) {
	h := NewLeftistHeaps(4)
	for u := Handle(1); u <= 4; u++ {
		h.Insert(u, 0, float32(u))
	}
	root := h.Heapify([]Handle{1, 2, 3, 4})
	s := h.ToString(0x4)

	h2 := NewLeftistHeaps(4)
	require.True(t, h2.FromString(s))
	require.Equal(t, "", h2.Verify())
	_ = root
}

func TestLeftistHeapsInsertMaintainsMin(t *testing.T) {
	h := NewLeftistHeaps(5)
	root := h.Insert(1, 0, 5)
	root = h.Insert(2, root, 3)
	root = h.Insert(3, root, 8)
	root = h.Insert(4, root, 1)
	require.Equal(t, "", h.Verify())
	require.Equal(t, Handle(4), h.Findmin(root))
}
