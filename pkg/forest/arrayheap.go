// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import "fmt"

// ArrayHeap is a d-ary heap over positions 1..m, indexed both ways:
// item[pos] and pos[item] are inverse maps so an item's position can
// be found in O(1) for changekey/delete. offset shifts every stored
// key by a constant so that add2keys is O(1). Used by PartitionedHeap
// to track the minimum of each active group.
type ArrayHeap struct {
	d        int
	m        int
	item     []Handle
	pos      []int
	storeKey []float32
	offset   float32
	steps    uint64
}

// NewArrayHeap returns an empty d-ary heap over item handles 1..n.
func NewArrayHeap(n Handle, d int) *ArrayHeap {
	assertf(d >= 2, "NewArrayHeap: fan-out must be >= 2, got %d", d)
	h := &ArrayHeap{d: d}
	h.Reset(n)
	return h
}

func (h *ArrayHeap) Reset(n Handle) {
	h.item = make([]Handle, n+1)
	h.pos = make([]int, n+1)
	h.storeKey = make([]float32, n+1)
	h.m = 0
	h.offset = 0
	h.steps = 0
}

func (h *ArrayHeap) Expand(n Handle) {
	old := len(h.pos) - 1
	if int(n) <= old {
		return
	}
	ni := make([]Handle, n+1)
	np := make([]int, n+1)
	nk := make([]float32, n+1)
	copy(ni, h.item)
	copy(np, h.pos)
	copy(nk, h.storeKey)
	h.item, h.pos, h.storeKey = ni, np, nk
}

func (h *ArrayHeap) Clear() {
	for i := range h.pos {
		h.pos[i] = 0
	}
	for i := range h.item {
		h.item[i] = 0
		h.storeKey[i] = 0
	}
	h.m, h.offset = 0, 0
}

func (h *ArrayHeap) GetStats() Stats { return Stats{Steps: h.steps} }

// N returns the number of items the heap can hold.
func (h *ArrayHeap) N() int { return len(h.pos) - 1 }

// Size returns the number of items currently in the heap.
func (h *ArrayHeap) Size() int { return h.m }

// Member reports whether i currently has a position in the heap.
func (h *ArrayHeap) Member(i Handle) bool { return h.pos[i] != 0 }

// Offset returns the additive constant currently applied to every
// stored key.
func (h *ArrayHeap) Offset() float32 { return h.offset }

// Key returns i's observable key (storeKey + offset).
func (h *ArrayHeap) Key(i Handle) float32 {
	assertf(h.Member(i), "Key: %d is not in the heap", i)
	return h.storeKey[i] + h.offset
}

func (h *ArrayHeap) parentPos(p int) int { return (p-2)/h.d + 1 }
func (h *ArrayHeap) firstChildPos(p int) int { return h.d*(p-1) + 2 }

// Findmin returns the item at position 1, or 0 if the heap is empty.
func (h *ArrayHeap) Findmin() Handle {
	if h.m == 0 {
		return 0
	}
	return h.item[1]
}

func (h *ArrayHeap) set(p int, i Handle) {
	h.item[p] = i
	h.pos[i] = p
}

// Insert adds item i with key k.
func (h *ArrayHeap) Insert(i Handle, k float32) {
	assertf(!h.Member(i), "Insert: %d is already in the heap", i)
	h.m++
	h.set(h.m, i)
	h.storeKey[i] = k - h.offset
	h.siftup(i, h.m)
}

// Delete removes item i from the heap.
func (h *ArrayHeap) Delete(i Handle) {
	assertf(h.Member(i), "Delete: %d is not in the heap", i)
	p := h.pos[i]
	last := h.item[h.m]
	h.m--
	h.pos[i] = 0
	if p <= h.m {
		h.set(p, last)
		h.siftup(last, p)
		h.siftdown(last, h.pos[last])
	}
	h.storeKey[i] = 0
}

// Changekey sets i's observable key to k.
func (h *ArrayHeap) Changekey(i Handle, k float32) {
	assertf(h.Member(i), "Changekey: %d is not in the heap", i)
	old := h.storeKey[i]
	h.storeKey[i] = k - h.offset
	p := h.pos[i]
	if h.storeKey[i] < old {
		h.siftup(i, p)
	} else {
		h.siftdown(i, h.pos[i])
	}
}

// Add2keys shifts every stored key by delta in O(1).
func (h *ArrayHeap) Add2keys(delta float32) { h.offset += delta }

func (h *ArrayHeap) siftup(i Handle, p int) int {
	for p > 1 {
		pp := h.parentPos(p)
		if h.storeKey[h.item[pp]] <= h.storeKey[i] {
			break
		}
		h.steps++
		h.set(p, h.item[pp])
		p = pp
	}
	h.set(p, i)
	return p
}

func (h *ArrayHeap) siftdown(i Handle, p int) int {
	for {
		c := h.minChild(p)
		if c == 0 || h.storeKey[h.item[c]] >= h.storeKey[i] {
			break
		}
		h.steps++
		h.set(p, h.item[c])
		p = c
	}
	h.set(p, i)
	return p
}

// minChild returns the position of p's smallest-keyed child, or 0 if
// p has none.
func (h *ArrayHeap) minChild(p int) int {
	first := h.firstChildPos(p)
	if first > h.m {
		return 0
	}
	best := first
	last := first + h.d - 1
	if last > h.m {
		last = h.m
	}
	for c := first + 1; c <= last; c++ {
		if h.storeKey[h.item[c]] < h.storeKey[h.item[best]] {
			best = c
		}
	}
	return best
}

func (h *ArrayHeap) Verify() string {
	for p := 2; p <= h.m; p++ {
		pp := h.parentPos(p)
		if h.storeKey[h.item[pp]] > h.storeKey[h.item[p]] {
			return fmt.Sprintf("position %d: key %g less than parent position %d key %g",
				p, h.storeKey[h.item[p]], pp, h.storeKey[h.item[pp]])
		}
	}
	for p := 1; p <= h.m; p++ {
		if h.pos[h.item[p]] != p {
			return fmt.Sprintf("position %d: item %d's pos entry is %d", p, h.item[p], h.pos[h.item[p]])
		}
	}
	return ""
}
