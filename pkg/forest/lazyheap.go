// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"fmt"
	"math"
)

var negInf = float32(math.Inf(-1))

// LazyHeaps extends LeftistHeaps with O(1) lazy melding: capacity is
// doubled so that 1..nn hold real client items and nn+1..n form a pool
// of dummy nodes, threaded into a free list through right[] when
// unused (rank -1). A dummy is spliced in as the common parent of two
// heap roots on every Meld; the resulting chains of dummies are only
// flattened (purged) lazily, during Findmin. Retired real items are
// logical deletions, also flattened during the next Findmin.
type LazyHeaps struct {
	LeftistHeaps
	nn         Handle
	retired    []bool
	freeDummy  Handle
	purgeSteps uint64
}

func NewLazyHeaps(nn Handle) *LazyHeaps {
	lh := &LazyHeaps{}
	lh.Reset(nn)
	return lh
}

// Reset allocates room for nn real items (capacity is doubled internally).
func (lh *LazyHeaps) Reset(nn Handle) {
	assertf(nn >= 0, "LazyHeaps.Reset: negative nn %d", nn)
	lh.LeftistHeaps.Reset(2 * nn)
	lh.nn = nn
	lh.retired = make([]bool, 2*nn+1)
	lh.purgeSteps = 0
	lh.initFreeList(lh.nn+1, lh.n)
}

func (lh *LazyHeaps) initFreeList(lo, hi Handle) {
	lh.freeDummy = 0
	for d := hi; d >= lo; d-- {
		lh.rank[d] = -1
		lh.right[d] = lh.freeDummy
		lh.freeDummy = d
	}
}

// Expand grows to at least nnNew real items, relocating the dummy
// pool (which must shift to make room for the larger real-item range)
// and remapping every handle > the old nn accordingly.
func (lh *LazyHeaps) Expand(nnNew Handle) {
	if nnNew <= lh.nn {
		return
	}
	oldNN, oldN := lh.nn, lh.n
	shift := nnNew - oldNN
	newN := 2 * nnNew

	newLeft := make([]Handle, newN+1)
	newRight := make([]Handle, newN+1)
	newParent := make([]Handle, newN+1)
	newKey := make([]float32, newN+1)
	newRank := make([]int32, newN+1)
	newRetired := make([]bool, newN+1)

	remap := func(h Handle) Handle {
		if h > oldNN {
			return h + shift
		}
		return h
	}
	for u := Handle(1); u <= oldNN; u++ {
		newLeft[u] = remap(lh.left[u])
		newRight[u] = remap(lh.right[u])
		if lh.parent[u] > 0 {
			newParent[u] = remap(lh.parent[u])
		} else {
			newParent[u] = lh.parent[u]
		}
		newKey[u] = lh.key[u]
		newRank[u] = lh.rank[u]
		newRetired[u] = lh.retired[u]
	}
	for u := oldNN + 1; u <= oldN; u++ {
		v := remap(u)
		newLeft[v] = remap(lh.left[u])
		newRight[v] = remap(lh.right[u])
		if lh.parent[u] > 0 {
			newParent[v] = remap(lh.parent[u])
		} else {
			newParent[v] = lh.parent[u]
		}
		newKey[v] = lh.key[u]
		newRank[v] = lh.rank[u]
	}

	lh.left, lh.right, lh.parent = newLeft, newRight, newParent
	lh.key, lh.rank, lh.retired = newKey, newRank, newRetired
	lh.n, lh.nn = newN, nnNew
	lh.freeDummy = remap(lh.freeDummy)
	for d := newN; d > oldN+shift; d-- {
		lh.rank[d] = -1
		lh.right[d] = lh.freeDummy
		lh.freeDummy = d
	}
}

func (lh *LazyHeaps) Clear() {
	lh.LeftistHeaps.Clear()
	for i := range lh.retired {
		lh.retired[i] = false
	}
	lh.initFreeList(lh.nn+1, lh.n)
}

func (lh *LazyHeaps) Assign(other *LazyHeaps) {
	lh.LeftistHeaps.Assign(&other.LeftistHeaps)
	lh.nn = other.nn
	lh.retired = append([]bool(nil), other.retired...)
	lh.freeDummy = other.freeDummy
	lh.purgeSteps = other.purgeSteps
}

func (lh *LazyHeaps) Transfer(other *LazyHeaps) {
	lh.LeftistHeaps.Transfer(&other.LeftistHeaps)
	lh.nn, lh.freeDummy, lh.purgeSteps = other.nn, other.freeDummy, other.purgeSteps
	lh.retired = other.retired
	other.retired = nil
	other.nn, other.freeDummy, other.purgeSteps = 0, 0, 0
}

func (lh *LazyHeaps) GetStats() Stats {
	s := lh.LeftistHeaps.GetStats()
	s.PurgeSteps = lh.purgeSteps
	return s
}

func (lh *LazyHeaps) isDummy(u Handle) bool { return u > lh.nn }

// Retired reports whether real item i has been logically removed but
// not yet purged.
func (lh *LazyHeaps) Retired(i Handle) bool {
	assertf(i >= 1 && i <= lh.nn, "Retired: %d is not a real item", i)
	return lh.retired[i]
}

// Retire marks real item i removed; the next Findmin purges it.
func (lh *LazyHeaps) Retire(i Handle) {
	assertf(i >= 1 && i <= lh.nn, "Retire: %d is not a real item", i)
	lh.retired[i] = true
}

func (lh *LazyHeaps) allocDummy() Handle {
	assertf(lh.freeDummy != 0, "LazyHeaps: dummy pool exhausted")
	d := lh.freeDummy
	lh.freeDummy = lh.right[d]
	lh.left[d], lh.right[d], lh.parent[d] = 0, 0, 0
	return d
}

func (lh *LazyHeaps) freeDummyNode(d Handle) {
	lh.left[d], lh.parent[d] = 0, 0
	lh.rank[d] = -1
	lh.right[d] = lh.freeDummy
	lh.freeDummy = d
}

// Meld is LazyHeaps' lazy O(1) meld: a dummy becomes the new root,
// its left child the larger-rank heap, its right child the other.
func (lh *LazyHeaps) Meld(h1, h2 Handle) Handle {
	if h1 == 0 {
		return h2
	}
	if h2 == 0 {
		return h1
	}
	d := lh.allocDummy()
	lh.key[d] = negInf
	if lh.rankOf(h1) < lh.rankOf(h2) {
		h1, h2 = h2, h1
	}
	lh.BinaryForest.Join(h1, d, h2)
	lh.rank[d] = lh.rankOf(lh.right[d]) + 1
	lh.parent[d] = 0
	lh.steps++
	return d
}

// Insert adds real item u with key k to the heap rooted at h.
func (lh *LazyHeaps) Insert(u, h Handle, k float32) Handle {
	assertf(u >= 1 && u <= lh.nn, "Insert: %d is not a real item", u)
	lh.key[u] = k
	lh.rank[u] = 1
	return lh.Meld(u, h)
}

// Findmin purges h (removing spent dummies and retired items along
// the way) and returns the new, observable-min root.
func (lh *LazyHeaps) Findmin(h Handle) Handle {
	if h == 0 {
		return 0
	}
	var list []Handle
	lh.purge(h, &list)
	lh.purgeSteps++
	return lh.LeftistHeaps.Heapify(list)
}

func (lh *LazyHeaps) purge(u Handle, list *[]Handle) {
	if u == 0 {
		return
	}
	lh.purgeSteps++
	if lh.isDummy(u) {
		l, r := lh.left[u], lh.right[u]
		lh.freeDummyNode(u)
		lh.purge(l, list)
		lh.purge(r, list)
		return
	}
	if lh.retired[u] {
		l, r := lh.left[u], lh.right[u]
		lh.retired[u] = false
		lh.left[u], lh.right[u], lh.parent[u] = 0, 0, 0
		lh.rank[u] = 1
		lh.purge(l, list)
		lh.purge(r, list)
		return
	}
	lh.parent[u] = 0
	*list = append(*list, u)
}

// Deletemin purges h, removes its (now-observable) root, and lazily
// melds its children back together. Returns (removed node, new root).
func (lh *LazyHeaps) Deletemin(h Handle) (Handle, Handle) {
	h = lh.Findmin(h)
	l, r := lh.left[h], lh.right[h]
	lh.left[h], lh.right[h] = 0, 0
	if l != 0 {
		lh.parent[l] = 0
	}
	if r != 0 {
		lh.parent[r] = 0
	}
	newRoot := lh.Meld(l, r)
	lh.rank[h] = 1
	lh.parent[h] = 0
	return h, newRoot
}

func (lh *LazyHeaps) ToString(flags int) string {
	return lh.BinaryForest.ToString(flags, func(u Handle) string {
		s := lh.label(u) + ":" + formatFloat(lh.key[u])
		if flags&0x8 != 0 {
			s += fmt.Sprintf(":%d", lh.rank[u])
		}
		return s
	})
}

func (lh *LazyHeaps) FromString(s string) bool {
	seen := make(map[Handle]bool)
	read := func(sc *scanner) (Handle, bool) {
		sc.eat('*')
		lbl, ok := sc.readLabel()
		if !ok {
			return 0, false
		}
		if !sc.eat(':') {
			return 0, false
		}
		kv, ok := sc.readFloat()
		if !ok {
			return 0, false
		}
		u, ok := index(lbl, lh.n)
		if !ok || !lh.Valid(u) || seen[u] {
			return 0, false
		}
		seen[u] = true
		lh.key[u] = kv
		if sc.peek() == ':' {
			sc.eat(':')
			if _, ok := sc.readInt(); !ok {
				return 0, false
			}
		}
		return u, true
	}
	lh.Clear()
	if !lh.parseForest(newScanner(s), read) {
		lh.Clear()
		return false
	}
	for u := Handle(1); u <= lh.n; u++ {
		if lh.IsRoot(u) {
			lh.rebuildRank(u)
		}
	}
	lh.initFreeList(lh.nn+1, lh.n)
	var unused []Handle
	for d := lh.nn + 1; d <= lh.n; d++ {
		if !seen[d] {
			unused = append(unused, d)
		}
	}
	lh.freeDummy = 0
	for i := len(unused) - 1; i >= 0; i-- {
		d := unused[i]
		lh.rank[d] = -1
		lh.right[d] = lh.freeDummy
		lh.freeDummy = d
	}
	return true
}

func (lh *LazyHeaps) Verify() string {
	// right[] of an unused dummy threads the free list, not a tree
	// edge; unlink the free list while the structural checks run.
	link := make(map[Handle]Handle)
	for d := lh.freeDummy; d != 0; d = link[d] {
		link[d] = lh.right[d]
		lh.right[d] = 0
	}
	msg := lh.LeftistHeaps.Verify()
	for d, next := range link {
		lh.right[d] = next
	}
	if msg != "" {
		return msg
	}
	for d := lh.nn + 1; d <= lh.n; d++ {
		if lh.rank[d] == -1 && !lh.IsRoot(d) {
			return fmt.Sprintf("dummy %d: on free list but not a root", d)
		}
	}
	return ""
}
