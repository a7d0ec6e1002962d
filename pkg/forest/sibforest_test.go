// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForestLinkCutPreorder(t *testing.T) {
	f := NewForest(6)
	f.Link(2, 1)
	f.Link(3, 1)
	f.Link(4, 2)
	f.Link(5, 2)
	f.Link(6, 3)
	require.Equal(t, "", f.Verify())

	var got []Handle
	for u := f.First(1); u != 0; u = f.Next(u, 1) {
		got = append(got, u)
	}
	require.Equal(t, []Handle{1, 2, 4, 5, 3, 6}, got)

	f.Cut(2)
	require.Equal(t, "", f.Verify())
	require.True(t, f.IsRoot(2))
	require.Equal(t, Handle(0), f.Parent(2))

	got = nil
	for u := f.First(1); u != 0; u = f.Next(u, 1) {
		got = append(got, u)
	}
	require.Equal(t, []Handle{1, 3, 6}, got)
}

func TestForestCombineAndRemoveGroves(t *testing.T) {
	f := NewForest(4)
	grove := f.CombineGroves(1, 2)
	grove = f.CombineGroves(grove, 3)
	require.Equal(t, "", f.Verify())

	var members []Handle
	u := grove
	for {
		members = append(members, u)
		u = f.NextSibling(u)
		if u == grove {
			break
		}
	}
	require.ElementsMatch(t, []Handle{1, 2, 3}, members)

	remaining := f.Remove(2, grove)
	require.Equal(t, "", f.Verify())
	require.Equal(t, Handle(2), f.NextSibling(2)) // singleton again
	require.NotEqual(t, Handle(0), remaining)

	members = nil
	u = remaining
	for {
		members = append(members, u)
		u = f.NextSibling(u)
		if u == remaining {
			break
		}
	}
	require.ElementsMatch(t, []Handle{1, 3}, members)
}

func TestForestRotateReordersChildList(t *testing.T) {
	f := NewForest(4)
	f.Link(2, 1)
	f.Link(3, 1)
	f.Link(4, 1)
	require.Equal(t, Handle(2), f.FirstChild(1))
	f.Rotate(4)
	require.Equal(t, "", f.Verify())
	require.Equal(t, Handle(4), f.FirstChild(1))
}
