// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryForestInsertAfterOrder(t *testing.T) {
	f := NewBinaryForest(6)
	var root Handle
	var last Handle
	for u := Handle(1); u <= 6; u++ {
		root = f.InsertAfter(u, last, root)
		last = u
	}
	require.Equal(t, "", f.Verify())
	var got []Handle
	for u := f.First(root); u != 0; u = f.Next(u, root) {
		got = append(got, u)
	}
	require.Equal(t, []Handle{1, 2, 3, 4, 5, 6}, got)
}

func TestBinaryForestSplitAndJoin(t *testing.T) {
	f := NewBinaryForest(5)
	var root Handle
	var last Handle
	for u := Handle(1); u <= 5; u++ {
		root = f.InsertAfter(u, last, root)
		last = u
	}
	L, R := f.Split(3)
	require.Equal(t, "", f.Verify())
	var lhs []Handle
	for u := f.First(L); u != 0; u = f.Next(u, L) {
		lhs = append(lhs, u)
	}
	require.Equal(t, []Handle{1, 2}, lhs)
	var rhs []Handle
	for u := f.First(R); u != 0; u = f.Next(u, R) {
		rhs = append(rhs, u)
	}
	require.Equal(t, []Handle{4, 5}, rhs)

	rejoined := f.Join(L, 3, R)
	require.Equal(t, "", f.Verify())
	var all []Handle
	for u := f.First(rejoined); u != 0; u = f.Next(u, rejoined) {
		all = append(all, u)
	}
	require.Equal(t, []Handle{1, 2, 3, 4, 5}, all)
}

func TestBinaryForestToStringFromStringRoundTrip(t *testing.T) {
	f := NewBinaryForest(5)
	var root Handle
	var last Handle
	for u := Handle(1); u <= 5; u++ {
		root = f.InsertAfter(u, last, root)
		last = u
	}
	s := f.ToString(0x4, nil)

	g := NewBinaryForest(5)
	require.True(t, g.FromString(s, nil))
	require.Equal(t, "", g.Verify())
	require.True(t, f.structEqual(g))
}

func TestBinaryForestRotatePreservesOrder(t *testing.T) {
	f := NewBinaryForest(3)
	root := f.Join(0, 2, 0)
	root = f.Link(1, 2, -1)
	root = f.Link(3, 2, 1)
	_ = root
	f.Rotate(1)
	require.Equal(t, "", f.Verify())
	var got []Handle
	r := f.Find(1)
	for u := f.First(r); u != 0; u = f.Next(u, r) {
		got = append(got, u)
	}
	require.Equal(t, []Handle{1, 2, 3}, got)
}

func TestBinaryForestDeleteRejoinsSubtrees(t *testing.T) {
	f := NewBinaryForest(5)
	var root Handle
	var last Handle
	for u := Handle(1); u <= 5; u++ {
		root = f.InsertAfter(u, last, root)
		last = u
	}
	newRoot := f.Delete(3, root)
	require.Equal(t, "", f.Verify())
	var got []Handle
	for u := f.First(newRoot); u != 0; u = f.Next(u, newRoot) {
		got = append(got, u)
	}
	require.Equal(t, []Handle{1, 2, 4, 5}, got)
}
