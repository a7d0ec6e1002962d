// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// FuzzKeySets randomly sequences insert/delete against a KeySets
// instance and checks the universal rank/BST invariants plus set
// equality against a shadow model after every step.
func FuzzKeySets(f *testing.F) {
	Ins := uint8(0b0100_0000)
	Del := uint8(0)

	f.Add([]uint8{})
	f.Add([]uint8{Ins | 5, Del | 5})
	f.Add([]uint8{Ins | 5, Del | 6})
	f.Add([]uint8{Del | 6})
	f.Add([]uint8{
		Ins | 1, Ins | 2, Ins | 5, Ins | 7, Ins | 8, Ins | 11, Ins | 14, Ins | 15, Ins | 4,
	})

	f.Fuzz(func(t *testing.T, dat []uint8) {
		const n = 40
		k := NewKeySets(n)
		var root Handle
		present := make(map[uint8]Handle) // key -> handle currently holding it
		nextHandle := Handle(1)
		handleOf := make(map[uint8]Handle)

		for _, b := range dat {
			ins := (b & 0b0100_0000) != 0
			val := b & 0b0011_1111
			if ins {
				if _, ok := present[val]; ok {
					continue
				}
				if nextHandle > n {
					continue
				}
				u := nextHandle
				nextHandle++
				handleOf[val] = u
				root = k.Insert(u, root, float32(val))
				present[val] = u
			} else {
				u, ok := present[val]
				if !ok {
					continue
				}
				root = k.Delete(u, root)
				delete(present, val)
			}
			require.Equal(t, "", k.Verify())
			require.Equal(t, len(present), func() int {
				if root == 0 {
					return 0
				}
				c := 0
				for u := k.First(root); u != 0; u = k.Next(u, root) {
					c++
				}
				return c
			}())
			for val, u := range present {
				require.True(t, k.In(float32(val), root))
				require.Equal(t, u, k.Lookup(float32(val), root))
			}
		}
	})
}

// TestBalancedForestRandomizedSequence randomly inserts and deletes
// across BalancedForest-based KeySets and checks the rank invariant
// and infix-order consistency after every step, the non-fuzz
// counterpart to FuzzKeySets for a deterministic, seeded CI run.
func TestBalancedForestRandomizedSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	const n = 30
	k := NewKeySets(n)
	var root Handle
	present := map[Handle]float32{}
	var free []Handle
	for u := Handle(1); u <= n; u++ {
		free = append(free, u)
	}

	for step := 0; step < 2000; step++ {
		if len(free) > 0 && (len(present) == 0 || rng.Intn(2) == 0) {
			idx := rng.Intn(len(free))
			u := free[idx]
			free = append(free[:idx], free[idx+1:]...)
			key := float32(rng.Intn(1000))
			root = k.Insert(u, root, key)
			present[u] = key
		} else if len(present) > 0 {
			var victims []Handle
			for u := range present {
				victims = append(victims, u)
			}
			u := victims[rng.Intn(len(victims))]
			root = k.Delete(u, root)
			delete(present, u)
			free = append(free, u)
		}
		require.Equal(t, "", k.Verify())
		var order []float32
		if root != 0 {
			for u := k.First(root); u != 0; u = k.Next(u, root) {
				order = append(order, k.Key(u))
			}
		}
		for i := 1; i < len(order); i++ {
			require.LessOrEqual(t, order[i-1], order[i])
		}
		require.Equal(t, len(present), len(order))
	}
}
