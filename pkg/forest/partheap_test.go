// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPartitionedHeapActivationScenario is the "PartitionedHeap
// activation" scenario: three groups with subheap minimums 5,3,7;
// activating all three, shifting keys, deactivating, and dividing must
// keep findmin() consistent with the observable group minimums.
func TestPartitionedHeapActivationScenario(t *testing.T) {
	ph := NewPartitionedHeap(20, 4, 2)

	// group 1: single item with key 5 (handle 1, "a")
	ph.InsertAfter(1, 1, 5, 0)
	// group 2: single item with key 3 (handle 2, "b")
	ph.InsertAfter(2, 2, 3, 0)
	// group 3: single item with key 7 (handle 3, "c")
	ph.InsertAfter(3, 3, 7, 0)

	ph.Activate(1)
	ph.Activate(2)
	ph.Activate(3)
	require.Equal(t, "", ph.Verify())

	min := ph.Findmin()
	require.Equal(t, Handle(2), min) // b, key 3

	ph.Add2keys(4)
	require.Equal(t, "", ph.Verify())
	min = ph.Findmin()
	require.Equal(t, Handle(2), min)
	require.Equal(t, float32(7), ph.heaps.Key(min, ph.Top(2)))

	ph.Deactivate(2)
	require.Equal(t, "", ph.Verify())
	min = ph.Findmin()
	require.Equal(t, Handle(1), min) // a, was key 5, observable 9
	require.Equal(t, float32(9), ph.heaps.Key(min, ph.Top(1)))

	// divide group 1 before its sole item into new group 4: the item
	// moves entirely into group 4 since it is the first (and only) item.
	ph.Divide(1, 1, 4)
	require.Equal(t, "", ph.Verify())
	require.Equal(t, Handle(0), ph.Top(1))
	require.Equal(t, Handle(1), ph.Top(4))
	ph.Activate(4)
	min = ph.Findmin()
	require.Equal(t, Handle(1), min)
	require.Equal(t, float32(9), ph.heaps.Key(min, ph.Top(4)))
}

func TestPartitionedHeapToStringFromStringRoundTrip(t *testing.T) {
	ph := NewPartitionedHeap(10, 3, 2)
	ph.InsertAfter(1, 1, 2, 0)
	ph.InsertAfter(2, 1, 1, 1)
	ph.InsertAfter(3, 2, 5, 0)
	ph.Activate(1)
	ph.Activate(2)
	s := ph.ToString()

	ph2 := NewPartitionedHeap(10, 3, 2)
	require.True(t, ph2.FromString(s))
	require.Equal(t, "", ph2.Verify())
}
