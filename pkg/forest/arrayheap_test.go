// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayHeapInsertFindminOrder(t *testing.T) {
	h := NewArrayHeap(6, 2)
	keys := map[Handle]float32{1: 5, 2: 3, 3: 8, 4: 1, 5: 9, 6: 4}
	for i := Handle(1); i <= 6; i++ {
		h.Insert(i, keys[i])
	}
	require.Equal(t, "", h.Verify())
	require.Equal(t, Handle(4), h.Findmin())
}

func TestArrayHeapChangekeyAndDelete(t *testing.T) {
	h := NewArrayHeap(5, 3)
	for i := Handle(1); i <= 5; i++ {
		h.Insert(i, float32(i))
	}
	require.Equal(t, Handle(1), h.Findmin())
	h.Changekey(5, 0)
	require.Equal(t, "", h.Verify())
	require.Equal(t, Handle(5), h.Findmin())

	h.Delete(5)
	require.Equal(t, "", h.Verify())
	require.Equal(t, Handle(1), h.Findmin())
	require.False(t, h.Member(5))
}

func TestArrayHeapAdd2keysIsGlobalAndO1(t *testing.T) {
	h := NewArrayHeap(4, 2)
	for i := Handle(1); i <= 4; i++ {
		h.Insert(i, float32(i))
	}
	h.Add2keys(10)
	require.Equal(t, "", h.Verify())
	for i := Handle(1); i <= 4; i++ {
		require.Equal(t, float32(i+10), h.Key(i))
	}
	require.Equal(t, Handle(1), h.Findmin())
}
