// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBalancedForestRerankScenario is the "BalancedForest rerank"
// scenario: inserting a..j with keys = position into an empty
// BalancedForest via insertByKey must satisfy the rank invariant and
// yield infix order a b c d e f g h i j.
func TestBalancedForestRerankScenario(t *testing.T) {
	b := NewKeySets(10)
	var root Handle
	for u := Handle(1); u <= 10; u++ {
		root = b.Insert(u, root, float32(u))
	}
	require.Equal(t, "", b.Verify())
	var got []string
	for u := b.First(root); u != 0; u = b.Next(u, root) {
		got = append(got, b.label(u))
	}
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, got)
}

func TestBalancedForestDeleteReranksAndRefindsRoot(t *testing.T) {
	b := NewKeySets(10)
	var root Handle
	for u := Handle(1); u <= 10; u++ {
		root = b.Insert(u, root, float32(u))
	}
	root = b.Delete(1, root)
	require.Equal(t, "", b.Verify())
	var got []string
	for u := b.First(root); u != 0; u = b.Next(u, root) {
		got = append(got, b.label(u))
	}
	require.Equal(t, []string{"b", "c", "d", "e", "f", "g", "h", "i", "j"}, got)

	for root != 0 {
		first := b.First(root)
		root = b.Delete(first, root)
		require.Equal(t, "", b.Verify())
	}
	require.Equal(t, Handle(0), root)
}

func TestBalancedForestJoinEmptyOperand(t *testing.T) {
	b := NewBalancedForest(4)
	root := b.Join(0, 1, 0)
	root = b.BinaryForest.InsertAfter(2, 1, root)
	b.rank[2] = 1
	b.rerankUp(2)
	root = b.Find(2)

	// Join a singleton onto the left (t1 empty).
	root = b.Join(0, 3, root)
	require.Equal(t, "", b.Verify())
	var got []Handle
	for u := b.First(root); u != 0; u = b.Next(u, root) {
		got = append(got, u)
	}
	require.Equal(t, []Handle{3, 1, 2}, got)

	// Join a singleton onto the right (t2 empty).
	root = b.Join(root, 4, 0)
	require.Equal(t, "", b.Verify())
	got = nil
	for u := b.First(root); u != 0; u = b.Next(u, root) {
		got = append(got, u)
	}
	require.Equal(t, []Handle{3, 1, 2, 4}, got)
}

func TestBalancedForestSplitBalancedPreservesRankInvariant(t *testing.T) {
	b := NewKeySets(9)
	var root Handle
	for u := Handle(1); u <= 9; u++ {
		root = b.Insert(u, root, float32(u))
	}
	L, R := b.splitBalanced(5)
	if L != 0 {
		require.Equal(t, "", b.BalancedForest.Verify())
	}
	var lhs, rhs []Handle
	for u := b.First(L); u != 0 && L != 0; u = b.Next(u, L) {
		lhs = append(lhs, u)
	}
	for u := b.First(R); u != 0 && R != 0; u = b.Next(u, R) {
		rhs = append(rhs, u)
	}
	require.Equal(t, []Handle{1, 2, 3, 4}, lhs)
	require.Equal(t, []Handle{6, 7, 8, 9}, rhs)
}
