// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import "fmt"

// OrderedHeaps is a BalancedForest where each tree is simultaneously a
// min-heap by key (plus a per-tree additive offset) and an ordered
// list by infix position. minKey[u] caches the minimum key over u's
// subtree; offset[r] (meaningful only while r is a root) is added to
// every key displayed from that tree, so a bulk "add delta to every
// key" is O(1).
type OrderedHeaps struct {
	BalancedForest
	key    []float32
	minKey []float32
	offset []float32
}

func NewOrderedHeaps(n Handle) *OrderedHeaps {
	o := &OrderedHeaps{}
	o.Reset(n)
	return o
}

func (o *OrderedHeaps) Reset(n Handle) {
	o.BalancedForest.Reset(n)
	o.key = make([]float32, n+1)
	o.minKey = make([]float32, n+1)
	o.offset = make([]float32, n+1)
}

func (o *OrderedHeaps) Expand(n Handle) {
	o.BalancedForest.Expand(n)
	nk := make([]float32, o.n+1)
	nm := make([]float32, o.n+1)
	nof := make([]float32, o.n+1)
	copy(nk, o.key)
	copy(nm, o.minKey)
	copy(nof, o.offset)
	o.key, o.minKey, o.offset = nk, nm, nof
}

func (o *OrderedHeaps) Clear() {
	o.BalancedForest.Clear()
	for i := range o.key {
		o.key[i], o.minKey[i], o.offset[i] = 0, 0, 0
	}
}

func (o *OrderedHeaps) Assign(other *OrderedHeaps) {
	o.BalancedForest.Assign(&other.BalancedForest)
	o.key = append([]float32(nil), other.key...)
	o.minKey = append([]float32(nil), other.minKey...)
	o.offset = append([]float32(nil), other.offset...)
}

func (o *OrderedHeaps) Transfer(other *OrderedHeaps) {
	o.BalancedForest.Transfer(&other.BalancedForest)
	o.key, o.minKey, o.offset = other.key, other.minKey, other.offset
	other.key, other.minKey, other.offset = nil, nil, nil
}

// Key returns u's observable key within tree h (key[u] + offset[h]).
func (o *OrderedHeaps) Key(u, h Handle) float32 {
	o.checkHandle(u)
	return o.key[u] + o.offset[h]
}

// refresh recomputes minKey from u up to its tree's root.
func (o *OrderedHeaps) refresh(u Handle) {
	fix := func(v Handle) {
		best := o.key[v]
		if l := o.Left(v); l != 0 && o.minKey[l] < best {
			best = o.minKey[l]
		}
		if r := o.Right(v); r != 0 && o.minKey[r] < best {
			best = o.minKey[r]
		}
		o.minKey[v] = best
	}
	for u != 0 {
		if l := o.Left(u); l != 0 {
			fix(l)
		}
		if r := o.Right(u); r != 0 {
			fix(r)
		}
		fix(u)
		u = o.Parent(u)
	}
}

// Findmin descends from h toward the subtree-minimum, returning the
// node whose own key equals the subtree's minKey.
func (o *OrderedHeaps) Findmin(h Handle) Handle {
	u := h
	for o.key[u] != o.minKey[u] {
		l, r := o.Left(u), o.Right(u)
		if l != 0 && o.minKey[l] == o.minKey[u] {
			u = l
		} else {
			u = r
		}
	}
	return u
}

// Add2keys shifts every key observable through tree h by delta, O(1).
func (o *OrderedHeaps) Add2keys(delta float32, h Handle) { o.offset[h] += delta }

// Changekey sets u's observable key (within tree h) to k.
func (o *OrderedHeaps) Changekey(u Handle, k float32, h Handle) {
	o.key[u] = k - o.offset[h]
	o.refresh(u)
}

// InsertAfter adds singleton u, with observable key k, immediately
// after j in the infix order of tree h (j==0 inserts at the front).
// Returns the new tree root.
func (o *OrderedHeaps) InsertAfter(u, j Handle, k float32, h Handle) Handle {
	off := float32(0)
	if h != 0 {
		off = o.offset[h]
	}
	o.key[u] = k - off
	o.minKey[u] = o.key[u]
	o.rank[u] = 1
	o.BinaryForest.InsertAfter(u, j, h)
	o.rerankUp(u)
	newRoot := o.Find(u)
	o.offset[newRoot] = off
	if newRoot != h {
		o.offset[h] = 0
	}
	o.refresh(u)
	return newRoot
}

// Delete removes u from tree h, preserving offset on the new root and
// restoring u to a clean singleton with its key made absolute.
func (o *OrderedHeaps) Delete(u, h Handle) Handle {
	off := o.offset[h]
	newT, c, pc, side := o.spliceOut(u, h)
	var newRoot Handle
	if pc != 0 {
		o.rerankDown(c, pc, side)
		o.refresh(pc)
		newRoot = o.Find(pc)
	} else if newT != 0 {
		o.refresh(newT)
		newRoot = o.Find(newT)
	}
	if newRoot != 0 {
		o.offset[newRoot] = off
	}
	o.key[u] += off
	o.minKey[u] = o.key[u]
	o.offset[u] = 0
	return newRoot
}

// Divide splits tree h at u: h1 holds everything strictly before u in
// infix order, h2 starts with u and holds everything after. The minKey
// aggregates of both pieces are then rebuilt bottom-up in full rather
// than incrementally refreshed, trading the usual O(log n) for O(n) in
// exchange for certainty that every affected minKey (not just those on
// one spine) is recomputed.
func (o *OrderedHeaps) Divide(u, h Handle) (Handle, Handle) {
	off := o.offset[h]
	L, R := o.splitBalanced(u)
	h2 := o.BalancedForest.Join(0, u, R)
	if L != 0 {
		o.offset[L] = off
		o.rebuildMinKey(L)
	}
	o.offset[h2] = off
	o.rebuildMinKey(h2)
	return L, h2
}

func (o *OrderedHeaps) Verify() string {
	if msg := o.BalancedForest.Verify(); msg != "" {
		return msg
	}
	for u := Handle(1); u <= o.n; u++ {
		want := o.key[u]
		if l := o.Left(u); l != 0 && o.minKey[l] < want {
			want = o.minKey[l]
		}
		if r := o.Right(u); r != 0 && o.minKey[r] < want {
			want = o.minKey[r]
		}
		if o.minKey[u] != want {
			return fmt.Sprintf("node %d: minKey %g inconsistent with subtree, want %g", u, o.minKey[u], want)
		}
	}
	return ""
}

func (o *OrderedHeaps) ToString(flags int) string {
	return o.BinaryForest.ToString(flags, func(u Handle) string {
		return o.label(u) + ":" + formatFloat(o.key[u])
	})
}

func (o *OrderedHeaps) FromString(s string) bool {
	seen := make(map[Handle]bool)
	read := func(sc *scanner) (Handle, bool) {
		sc.eat('*')
		lbl, ok := sc.readLabel()
		if !ok || !sc.eat(':') {
			return 0, false
		}
		kv, ok := sc.readFloat()
		if !ok {
			return 0, false
		}
		u, ok := index(lbl, o.n)
		if !ok || !o.Valid(u) || seen[u] {
			return 0, false
		}
		seen[u] = true
		o.key[u] = kv
		o.minKey[u] = kv
		return u, true
	}
	o.Clear()
	if !o.parseForest(newScanner(s), read) {
		o.Clear()
		return false
	}
	for u := Handle(1); u <= o.n; u++ {
		if o.IsRoot(u) {
			o.rebuildRank(u)
			o.rebuildMinKey(u)
		}
	}
	return true
}

func (o *OrderedHeaps) rebuildMinKey(u Handle) float32 {
	if u == 0 {
		return 0
	}
	best := o.key[u]
	if l := o.Left(u); l != 0 {
		if lv := o.rebuildMinKey(l); lv < best {
			best = lv
		}
	}
	if r := o.Right(u); r != 0 {
		if rv := o.rebuildMinKey(r); rv < best {
			best = rv
		}
	}
	o.minKey[u] = best
	return best
}
