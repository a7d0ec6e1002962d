// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import "fmt"

// LeftistHeaps is a collection of mergeable min-heaps built directly
// on BinaryForest. rank[u] is the null-path length of the min-heap
// subtree rooted at u (not a balance rank): rank[u] = 1 + rank[right[u]],
// and rank[left[u]] >= rank[right[u]] always holds.
type LeftistHeaps struct {
	BinaryForest
	key       []float32
	rank      []int32
	meldSteps uint64
}

func NewLeftistHeaps(n Handle) *LeftistHeaps {
	h := &LeftistHeaps{}
	h.Reset(n)
	return h
}

func (h *LeftistHeaps) Reset(n Handle) {
	h.BinaryForest.Reset(n)
	h.key = make([]float32, n+1)
	h.rank = make([]int32, n+1)
	for i := Handle(1); i <= n; i++ {
		h.rank[i] = 1
	}
	h.meldSteps = 0
}

func (h *LeftistHeaps) Expand(n Handle) {
	old := h.n
	h.BinaryForest.Expand(n)
	nk := make([]float32, h.n+1)
	nr := make([]int32, h.n+1)
	copy(nk, h.key)
	copy(nr, h.rank)
	for i := old + 1; i <= h.n; i++ {
		nr[i] = 1
	}
	h.key, h.rank = nk, nr
}

func (h *LeftistHeaps) Clear() {
	h.BinaryForest.Clear()
	for i := range h.key {
		h.key[i] = 0
		if Handle(i) >= 1 {
			h.rank[i] = 1
		}
	}
}

func (h *LeftistHeaps) Assign(other *LeftistHeaps) {
	h.BinaryForest.Assign(&other.BinaryForest)
	h.key = append([]float32(nil), other.key...)
	h.rank = append([]int32(nil), other.rank...)
	h.meldSteps = other.meldSteps
}

func (h *LeftistHeaps) Transfer(other *LeftistHeaps) {
	h.BinaryForest.Transfer(&other.BinaryForest)
	h.key, h.rank = other.key, other.rank
	h.meldSteps = other.meldSteps
	other.key, other.rank = nil, nil
	other.meldSteps = 0
}

func (h *LeftistHeaps) GetStats() Stats {
	s := h.BinaryForest.GetStats()
	s.MeldSteps = h.meldSteps
	return s
}

// Key returns u's key.
func (h *LeftistHeaps) Key(u Handle) float32 {
	h.checkHandle(u)
	return h.key[u]
}

func (h *LeftistHeaps) rankOf(u Handle) int32 {
	if u == 0 {
		return 0
	}
	return h.rank[u]
}

// Meld combines two heaps (root handles, 0 for empty) into one,
// returning the new root.
func (h *LeftistHeaps) Meld(h1, h2 Handle) Handle {
	if h1 == 0 {
		return h2
	}
	if h2 == 0 {
		return h1
	}
	h.meldSteps++
	h.steps++
	if h.key[h1] > h.key[h2] {
		h1, h2 = h2, h1
	}
	newRight := h.Meld(h.right[h1], h2)
	h.right[h1] = newRight
	if newRight != 0 {
		h.parent[newRight] = h1
	}
	if h.rankOf(h.left[h1]) < h.rankOf(h.right[h1]) {
		h.left[h1], h.right[h1] = h.right[h1], h.left[h1]
	}
	h.rank[h1] = h.rankOf(h.right[h1]) + 1
	h.parent[h1] = 0
	return h1
}

// Insert adds singleton u with key k into the heap rooted at heapRoot
// (0 for empty), returning the new root.
func (h *LeftistHeaps) Insert(u, heapRoot Handle, k float32) Handle {
	h.key[u] = k
	h.rank[u] = 1
	return h.Meld(u, heapRoot)
}

// Findmin returns the min of the heap rooted at heapRoot: the root itself.
func (h *LeftistHeaps) Findmin(heapRoot Handle) Handle {
	return heapRoot
}

// Deletemin removes the root of heapRoot, melding its two subtrees.
// Returns (the removed node, the new root).
func (h *LeftistHeaps) Deletemin(heapRoot Handle) (Handle, Handle) {
	l, r := h.left[heapRoot], h.right[heapRoot]
	h.left[heapRoot], h.right[heapRoot] = 0, 0
	if l != 0 {
		h.parent[l] = 0
	}
	if r != 0 {
		h.parent[r] = 0
	}
	newRoot := h.Meld(l, r)
	h.rank[heapRoot] = 1
	h.parent[heapRoot] = 0
	return heapRoot, newRoot
}

// Heapify repeatedly melds pairs from the front of list until one
// heap remains, returning its root (0 for an empty list).
func (h *LeftistHeaps) Heapify(list []Handle) Handle {
	if len(list) == 0 {
		return 0
	}
	queue := append([]Handle(nil), list...)
	for len(queue) > 1 {
		merged := h.Meld(queue[0], queue[1])
		queue = append(queue[2:], merged)
	}
	return queue[0]
}

func (h *LeftistHeaps) ToString(flags int) string {
	return h.BinaryForest.ToString(flags, func(u Handle) string {
		s := h.label(u) + ":" + formatFloat(h.key[u])
		if flags&0x8 != 0 {
			s += fmt.Sprintf(":%d", h.rank[u])
		}
		return s
	})
}

func (h *LeftistHeaps) FromString(s string) bool {
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
		u, ok := index(lbl, h.n)
		if !ok || !h.Valid(u) || seen[u] {
			return 0, false
		}
		seen[u] = true
		h.key[u] = kv
		if sc.peek() == ':' {
			sc.eat(':')
			if _, ok := sc.readInt(); !ok {
				return 0, false
			}
		}
		return u, true
	}
	h.Clear()
	if !h.parseForest(newScanner(s), read) {
		h.Clear()
		return false
	}
	for u := Handle(1); u <= h.n; u++ {
		if h.IsRoot(u) {
			h.rebuildRank(u)
		}
	}
	return true
}

// rebuildRank recomputes the null-path length bottom-up after a bulk
// load, swapping children where necessary to restore rank[left]>=rank[right].
func (h *LeftistHeaps) rebuildRank(u Handle) int32 {
	if u == 0 {
		return 0
	}
	lc, rc := h.left[u], h.right[u]
	lr := h.rebuildRank(lc)
	rr := h.rebuildRank(rc)
	if lr < rr {
		h.left[u], h.right[u] = rc, lc
		rr = lr
	}
	h.rank[u] = rr + 1
	return h.rank[u]
}

func (h *LeftistHeaps) Verify() string {
	if msg := h.BinaryForest.Verify(); msg != "" {
		return msg
	}
	for u := Handle(1); u <= h.n; u++ {
		if !h.IsRoot(u) && h.key[h.Parent(u)] > h.key[u] {
			return fmt.Sprintf("node %d: key %g less than parent %d key %g", u, h.key[u], h.Parent(u), h.key[h.Parent(u)])
		}
		if h.rank[u] < 0 {
			// unused dummy (LazyHeaps free list): right[u] threads the
			// free list rather than a tree edge, so the null-path-length
			// invariant does not apply here.
			continue
		}
		if h.rankOf(h.left[u]) < h.rankOf(h.right[u]) {
			return fmt.Sprintf("node %d: left rank %d less than right rank %d", u, h.rankOf(h.left[u]), h.rankOf(h.right[u]))
		}
		if h.rank[u] != h.rankOf(h.right[u])+1 {
			return fmt.Sprintf("node %d: rank %d != 1+rank(right) %d", u, h.rank[u], h.rankOf(h.right[u]))
		}
	}
	return ""
}
