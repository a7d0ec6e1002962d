// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"fmt"
	"math"
	"strings"
)

// FibHeaps is a collection of Fibonacci heaps built on the sibling-list
// Forest: each heap is a grove whose members are min-rooted trees.
// rank[u] is u's number of children; mark[u] records whether u has
// lost a child since it last became a non-root (used to drive
// cascading cuts on changekey).
type FibHeaps struct {
	Forest
	key              []float32
	rank             []int32
	mark             []bool
	consolidate      []Handle // rank-indexed scratch slots, reused across deletemin calls
	decreaseSteps    uint64
	consolidateSteps uint64
}

func NewFibHeaps(n Handle) *FibHeaps {
	h := &FibHeaps{}
	h.Reset(n)
	return h
}

func (h *FibHeaps) Reset(n Handle) {
	h.Forest.Reset(n)
	h.key = make([]float32, n+1)
	h.rank = make([]int32, n+1)
	h.mark = make([]bool, n+1)
	h.consolidate = make([]Handle, rankBound(n)+2)
	h.decreaseSteps, h.consolidateSteps = 0, 0
}

func (h *FibHeaps) Expand(n Handle) {
	old := h.n
	h.Forest.Expand(n)
	nk := make([]float32, h.n+1)
	nr := make([]int32, h.n+1)
	nm := make([]bool, h.n+1)
	copy(nk, h.key)
	copy(nr, h.rank)
	copy(nm, h.mark)
	_ = old
	h.key, h.rank, h.mark = nk, nr, nm
	h.consolidate = make([]Handle, rankBound(h.n)+2)
}

func (h *FibHeaps) Clear() {
	h.Forest.Clear()
	for i := range h.key {
		h.key[i], h.rank[i], h.mark[i] = 0, 0, false
	}
}

func (h *FibHeaps) Assign(other *FibHeaps) {
	h.Forest.Assign(&other.Forest)
	h.key = append([]float32(nil), other.key...)
	h.rank = append([]int32(nil), other.rank...)
	h.mark = append([]bool(nil), other.mark...)
	h.consolidate = make([]Handle, len(other.consolidate))
	h.decreaseSteps, h.consolidateSteps = other.decreaseSteps, other.consolidateSteps
}

func (h *FibHeaps) Transfer(other *FibHeaps) {
	h.Forest.Transfer(&other.Forest)
	h.key, h.rank, h.mark = other.key, other.rank, other.mark
	h.consolidate = other.consolidate
	h.decreaseSteps, h.consolidateSteps = other.decreaseSteps, other.consolidateSteps
	other.key, other.rank, other.mark, other.consolidate = nil, nil, nil, nil
	other.decreaseSteps, other.consolidateSteps = 0, 0
}

func (h *FibHeaps) GetStats() Stats {
	s := h.Forest.GetStats()
	s.DecreaseSteps = h.decreaseSteps
	s.ConsolidateSteps = h.consolidateSteps
	return s
}

// rankBound returns floor(log_phi(n)) + a small constant, the rank a
// node's child count can never exceed.
func rankBound(n Handle) int {
	if n < 2 {
		return 2
	}
	const logPhi = 0.4812118250596 // log2(golden ratio)
	return int(math.Log2(float64(n))/logPhi) + 3
}

// Key returns u's key.
func (h *FibHeaps) Key(u Handle) float32 { h.checkHandle(u); return h.key[u] }

// Rank returns u's rank (number of children).
func (h *FibHeaps) Rank(u Handle) int32 { h.checkHandle(u); return h.rank[u] }

// Marked reports whether u has lost a child since becoming a non-root.
func (h *FibHeaps) Marked(u Handle) bool { h.checkHandle(u); return h.mark[u] }

// Findmin returns the grove's minimum, which is always its first
// member by construction.
func (h *FibHeaps) Findmin(grove Handle) Handle { return grove }

// Meld concatenates the two groves and rotates the result so that the
// smaller-keyed first sibling leads, in O(1).
func (h *FibHeaps) Meld(g1, g2 Handle) Handle {
	if g1 == 0 {
		return g2
	}
	if g2 == 0 {
		return g1
	}
	h.CombineGroves(g1, g2)
	h.steps++
	if h.key[g2] < h.key[g1] {
		return g2
	}
	return g1
}

// Insert adds singleton u with key k into the grove, returning the
// (possibly new) grove head.
func (h *FibHeaps) Insert(u, grove Handle, k float32) Handle {
	h.key[u], h.rank[u], h.mark[u] = k, 0, false
	h.parent[u] = 0
	h.firstChild[u], h.lastChild[u] = 0, 0
	h.nextSibling[u], h.prevSibling[u] = u, u
	return h.Meld(u, grove)
}

// Changekey lowers (or raises) u's key within the grove headed by
// grove, returning the new grove head.
func (h *FibHeaps) Changekey(u, grove Handle, k float32) Handle {
	if k > h.key[u] {
		grove = h.Changekey(u, grove, negInf)
		_, grove = h.Deletemin(grove)
		return h.Insert(u, grove, k)
	}
	h.key[u] = k
	if h.parent[u] == 0 {
		if k < h.key[grove] {
			return u
		}
		return grove
	}
	if h.key[u] >= h.key[h.parent[u]] {
		return grove
	}
	return h.cutAndCascade(u, grove)
}

func (h *FibHeaps) cutAndCascade(u, grove Handle) Handle {
	h.decreaseSteps++
	p := h.parent[u]
	h.rank[p]--
	h.Cut(u)
	h.mark[u] = false
	grove = h.Meld(u, grove)
	for p != 0 {
		gp := h.parent[p]
		if gp == 0 {
			break
		}
		if !h.mark[p] {
			h.mark[p] = true
			break
		}
		h.decreaseSteps++
		h.rank[gp]--
		h.Cut(p)
		h.mark[p] = false
		grove = h.Meld(p, grove)
		p = gp
	}
	return grove
}

// Deletemin removes grove's head, melding its children into the
// grove and consolidating so all surviving roots have distinct ranks.
// Returns (the removed node, the new grove head, 0 if now empty).
func (h *FibHeaps) Deletemin(grove Handle) (Handle, Handle) {
	removed := grove
	var rest Handle
	if h.nextSibling[grove] != grove {
		rest = h.Remove(grove, grove)
	}
	c := h.firstChild[removed]
	for c != 0 {
		next := h.nextSibling[c]
		if next == c {
			next = 0
		}
		h.Cut(c)
		h.mark[c] = false
		rest = h.CombineGroves(rest, c)
		if next == 0 {
			break
		}
		c = next
	}
	h.firstChild[removed], h.lastChild[removed] = 0, 0
	h.rank[removed] = 0
	if rest == 0 {
		return removed, 0
	}
	return removed, h.consolidateGrove(rest)
}

// consolidateGrove links roots of equal rank until every root in the
// grove has a distinct rank, returning the new minimum-keyed head.
func (h *FibHeaps) consolidateGrove(grove Handle) Handle {
	for i := range h.consolidate {
		h.consolidate[i] = 0
	}
	var roots []Handle
	u := grove
	for {
		next := h.nextSibling[u]
		roots = append(roots, u)
		h.nextSibling[u], h.prevSibling[u] = u, u
		if next == u || next == grove {
			break
		}
		u = next
	}
	var grovePtr Handle
	for _, r := range roots {
		x := r
		for {
			h.consolidateSteps++
			rk := int(h.rank[x])
			if rk >= len(h.consolidate) {
				nc := make([]Handle, rk+2)
				copy(nc, h.consolidate)
				h.consolidate = nc
			}
			y := h.consolidate[rk]
			if y == 0 {
				h.consolidate[rk] = x
				break
			}
			h.consolidate[rk] = 0
			if h.key[y] < h.key[x] {
				x, y = y, x
			}
			h.Link(y, x)
			h.rank[x]++
		}
	}
	var min Handle
	for _, slot := range h.consolidate {
		if slot == 0 {
			continue
		}
		grovePtr = h.CombineGroves(grovePtr, slot)
		if min == 0 || h.key[slot] < h.key[min] {
			min = slot
		}
	}
	return min
}

func (h *FibHeaps) ToString(flags int) string {
	var b strings.Builder
	b.WriteString("{")
	roots := h.groveRoots()
	for _, r := range roots {
		b.WriteString(" ")
		h.writeTree(&b, r, flags)
	}
	b.WriteString(" }")
	return b.String()
}

func (h *FibHeaps) groveRoots() []Handle {
	var roots []Handle
	seen := make(map[Handle]bool)
	for u := Handle(1); u <= h.n; u++ {
		if h.parent[u] != 0 || seen[u] {
			continue
		}
		v := u
		for {
			roots = append(roots, v)
			seen[v] = true
			v = h.nextSibling[v]
			if v == u {
				break
			}
		}
	}
	return roots
}

func (h *FibHeaps) writeTree(b *strings.Builder, u Handle, flags int) {
	b.WriteString("[ ")
	b.WriteString(h.label(u))
	b.WriteString(":")
	b.WriteString(formatFloat(h.key[u]))
	if h.mark[u] {
		b.WriteString("!")
	}
	c := h.firstChild[u]
	for c != 0 {
		b.WriteString(" ")
		h.writeTree(b, c, flags)
		c = h.nextSibling[c]
		if c == h.firstChild[u] {
			break
		}
	}
	b.WriteString(" ]")
}

func (h *FibHeaps) FromString(s string) bool {
	sc := newScanner(s)
	if !sc.eat('{') {
		return false
	}
	seen := make(map[Handle]bool)
	h.Clear()
	var grove Handle
	for {
		sc.skipSpace()
		if sc.eat('}') {
			break
		}
		u, ok := h.parseFibTree(sc, seen)
		if !ok {
			h.Clear()
			return false
		}
		if grove == 0 {
			grove = u
		} else {
			h.CombineGroves(grove, u)
		}
	}
	return true
}

func (h *FibHeaps) parseFibTree(sc *scanner, seen map[Handle]bool) (Handle, bool) {
	sc.skipSpace()
	if !sc.eat('[') {
		return 0, false
	}
	sc.skipSpace()
	lbl, ok := sc.readLabel()
	if !ok || !sc.eat(':') {
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
	h.rank[u] = 0
	h.mark[u] = false
	h.parent[u], h.firstChild[u], h.lastChild[u] = 0, 0, 0
	h.nextSibling[u], h.prevSibling[u] = u, u
	if sc.peek() == '!' {
		sc.eat('!')
		h.mark[u] = true
	}
	for {
		sc.skipSpace()
		if sc.peek() == ']' {
			sc.eat(']')
			return u, true
		}
		c, ok := h.parseFibTree(sc, seen)
		if !ok {
			return 0, false
		}
		h.Link(c, u)
	}
}

func (h *FibHeaps) Verify() string {
	if msg := h.Forest.Verify(); msg != "" {
		return msg
	}
	for u := Handle(1); u <= h.n; u++ {
		if !h.IsRoot(u) && h.key[h.Parent(u)] > h.key[u] {
			return fmt.Sprintf("node %d: key %g less than parent key %g", u, h.key[u], h.key[h.Parent(u)])
		}
		cnt := int32(0)
		c := h.firstChild[u]
		for c != 0 {
			cnt++
			c = h.nextSibling[c]
			if c == h.firstChild[u] {
				break
			}
		}
		if cnt != h.rank[u] {
			return fmt.Sprintf("node %d: rank %d does not match child count %d", u, h.rank[u], cnt)
		}
	}
	return ""
}
