// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"fmt"
	"strings"
)

// PartitionedHeap partitions a single OrderedHeaps arena into hn
// named groups, each group an independent ordered subheap (top[g] is
// its root). An ArrayHeap tracks the minimum of every *active* group
// so the global findmin is O(log hn) instead of O(hn); bulk add2keys
// across all active groups is made O(1) by deferring each group's
// OrderedHeaps offset update until the group is next touched
// (lastOffset[g] records how much of the ArrayHeap's cumulative
// offset that group has already absorbed).
type PartitionedHeap struct {
	heaps      *OrderedHeaps
	hn         Handle
	top        []Handle
	active     *ArrayHeap
	lastOffset []float32
}

func NewPartitionedHeap(n, hn Handle, d int) *PartitionedHeap {
	ph := &PartitionedHeap{}
	ph.Reset(n, hn, d)
	return ph
}

func (ph *PartitionedHeap) Reset(n, hn Handle, d int) {
	ph.heaps = NewOrderedHeaps(n)
	ph.hn = hn
	ph.top = make([]Handle, hn+1)
	ph.active = NewArrayHeap(hn, d)
	ph.lastOffset = make([]float32, hn+1)
}

func (ph *PartitionedHeap) GetStats() Stats {
	s := ph.heaps.GetStats()
	other := ph.active.GetStats()
	s.Steps += other.Steps
	return s
}

func (ph *PartitionedHeap) isActive(g Handle) bool { return ph.active.Member(g) }

// Top returns group g's subheap root (0 if empty).
func (ph *PartitionedHeap) Top(g Handle) Handle { return ph.top[g] }

// updateKeys propagates the portion of the ArrayHeap's cumulative
// offset that group g has not yet absorbed into its OrderedHeaps tree.
func (ph *PartitionedHeap) updateKeys(g Handle) {
	delta := ph.active.Offset() - ph.lastOffset[g]
	if delta != 0 && ph.top[g] != 0 {
		ph.heaps.Add2keys(delta, ph.top[g])
	}
	ph.lastOffset[g] = ph.active.Offset()
}

// Activate inserts nonempty group g into the active set, keyed by its
// current subheap minimum.
func (ph *PartitionedHeap) Activate(g Handle) {
	assertf(ph.top[g] != 0, "Activate: group %d is empty", g)
	min := ph.heaps.Key(ph.heaps.Findmin(ph.top[g]), ph.top[g])
	ph.active.Insert(g, min)
	ph.lastOffset[g] = ph.active.Offset()
}

// Deactivate removes g from the active set, first letting it absorb
// any deferred offset.
func (ph *PartitionedHeap) Deactivate(g Handle) {
	ph.updateKeys(g)
	ph.active.Delete(g)
}

// Findmin returns the item of smallest observable key across all
// active groups, or 0 if none are active.
func (ph *PartitionedHeap) Findmin() Handle {
	g := ph.active.Findmin()
	if g == 0 {
		return 0
	}
	ph.updateKeys(g)
	return ph.heaps.Findmin(ph.top[g])
}

// Add2keys shifts every key of every active group by delta, O(1).
func (ph *PartitionedHeap) Add2keys(delta float32) { ph.active.Add2keys(delta) }

// InsertAfter adds item i with key k to group g, immediately after j
// in g's infix order (j==0 inserts at the front).
func (ph *PartitionedHeap) InsertAfter(i, g Handle, k float32, j Handle) {
	if ph.isActive(g) {
		ph.updateKeys(g)
	}
	ph.top[g] = ph.heaps.InsertAfter(i, j, k, ph.top[g])
	if ph.isActive(g) && k < ph.active.Key(g) {
		ph.active.Changekey(g, k)
	}
}

// Delete removes item i from group g.
func (ph *PartitionedHeap) Delete(i, g Handle) {
	if ph.isActive(g) {
		ph.updateKeys(g)
	}
	ph.top[g] = ph.heaps.Delete(i, ph.top[g])
	if ph.isActive(g) {
		if ph.top[g] == 0 {
			ph.active.Delete(g)
		} else {
			newMin := ph.heaps.Key(ph.heaps.Findmin(ph.top[g]), ph.top[g])
			if newMin != ph.active.Key(g) {
				ph.active.Changekey(g, newMin)
			}
		}
	}
}

// Divide splits group g at item i: items before i remain in g, items
// from i onward move to (previously empty) group g0.
func (ph *PartitionedHeap) Divide(g, i, g0 Handle) {
	if ph.isActive(g) {
		ph.updateKeys(g)
		ph.active.Delete(g)
	}
	h1, h2 := ph.heaps.Divide(i, ph.top[g])
	ph.top[g] = h1
	ph.top[g0] = h2
}

func (ph *PartitionedHeap) groupItems(g Handle) []Handle {
	root := ph.top[g]
	if root == 0 {
		return nil
	}
	var items []Handle
	for u := ph.heaps.First(root); u != 0; u = ph.heaps.Next(u, root) {
		items = append(items, u)
	}
	return items
}

func (ph *PartitionedHeap) ToString() string {
	var b strings.Builder
	b.WriteString("{")
	minG := ph.active.Findmin()
	for g := Handle(1); g <= ph.hn; g++ {
		b.WriteString(" ")
		fmt.Fprintf(&b, "%d", g)
		if ph.isActive(g) {
			b.WriteString("@")
		}
		if minG != 0 && g == minG {
			b.WriteString("!")
		}
		b.WriteString("[")
		for i, it := range ph.groupItems(g) {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(ph.heaps.label(it) + ":" + formatFloat(ph.heaps.Key(it, ph.top[g])))
		}
		b.WriteString("]")
	}
	b.WriteString(" }")
	return b.String()
}

func (ph *PartitionedHeap) FromString(s string) bool {
	sc := newScanner(s)
	if !sc.eat('{') {
		return false
	}
	ph.heaps.Clear()
	for i := range ph.top {
		ph.top[i] = 0
	}
	for g := Handle(1); g <= ph.hn; g++ {
		ph.lastOffset[g] = 0
	}
	ph.active = NewArrayHeap(ph.hn, 2)
	seen := make(map[Handle]bool)
	toActivate := []Handle{}
	for {
		sc.skipSpace()
		if sc.eat('}') {
			break
		}
		gv, ok := sc.readInt()
		if !ok {
			return false
		}
		g := Handle(gv)
		if g < 1 || g > ph.hn || ph.top[g] != 0 {
			return false
		}
		isActive := sc.eat('@')
		sc.eat('!')
		if !sc.eat('[') {
			return false
		}
		var root Handle
		var last Handle
		for {
			sc.skipSpace()
			if sc.eat(']') {
				break
			}
			lbl, ok := sc.readLabel()
			if !ok || !sc.eat(':') {
				return false
			}
			kv, ok := sc.readFloat()
			if !ok {
				return false
			}
			u, ok := index(lbl, ph.heaps.n)
			if !ok || !ph.heaps.Valid(u) || seen[u] {
				return false
			}
			seen[u] = true
			root = ph.heaps.InsertAfter(u, last, kv, root)
			last = u
		}
		ph.top[g] = root
		if isActive {
			toActivate = append(toActivate, g)
		}
	}
	for _, g := range toActivate {
		if ph.top[g] != 0 {
			ph.Activate(g)
		}
	}
	return true
}

func (ph *PartitionedHeap) Verify() string {
	if msg := ph.heaps.Verify(); msg != "" {
		return msg
	}
	for g := Handle(1); g <= ph.hn; g++ {
		if ph.isActive(g) {
			want := ph.heaps.Key(ph.heaps.Findmin(ph.top[g]), ph.top[g]) + (ph.active.Offset() - ph.lastOffset[g])
			if ph.active.Key(g) != want {
				return fmt.Sprintf("group %d: active key %g does not match subheap minimum %g", g, ph.active.Key(g), want)
			}
		}
	}
	return ""
}
