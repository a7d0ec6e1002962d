// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import "fmt"

// KeySets is a BalancedForest ordered by a single float32 key: each
// tree is a balanced BST whose infix order matches key order.
type KeySets struct {
	BalancedForest
	key []float32
}

func NewKeySets(n Handle) *KeySets {
	k := &KeySets{}
	k.Reset(n)
	return k
}

func (k *KeySets) Reset(n Handle) {
	k.BalancedForest.Reset(n)
	k.key = make([]float32, n+1)
}

func (k *KeySets) Expand(n Handle) {
	k.BalancedForest.Expand(n)
	nk := make([]float32, k.n+1)
	copy(nk, k.key)
	k.key = nk
}

func (k *KeySets) Clear() {
	k.BalancedForest.Clear()
	for i := range k.key {
		k.key[i] = 0
	}
}

func (k *KeySets) Assign(other *KeySets) {
	k.BalancedForest.Assign(&other.BalancedForest)
	k.key = append([]float32(nil), other.key...)
}

func (k *KeySets) Transfer(other *KeySets) {
	k.BalancedForest.Transfer(&other.BalancedForest)
	k.key = other.key
	other.key = nil
}

// Key returns u's key.
func (k *KeySets) Key(u Handle) float32 {
	k.checkHandle(u)
	return k.key[u]
}

func (k *KeySets) cmp(a, c Handle) int {
	switch ka, kc := k.key[a], k.key[c]; {
	case ka < kc:
		return -1
	case ka > kc:
		return 1
	default:
		return 0
	}
}

// Insert adds singleton u with key k into the tree rooted at t.
// Returns the new root.
func (k *KeySets) Insert(u, t Handle, key float32) Handle {
	k.key[u] = key
	return k.BalancedForest.InsertByKey(u, t, k.cmp)
}

// Lookup returns the item with the given key in t, or 0 if absent.
func (k *KeySets) Lookup(key float32, t Handle) Handle {
	return k.Search(key, t, func(u Handle) float32 { return k.key[u] })
}

// In reports whether key is present in t.
func (k *KeySets) In(key float32, t Handle) bool {
	return k.Lookup(key, t) != 0
}

func (k *KeySets) ToString(flags int) string {
	return k.BinaryForest.ToString(flags, func(u Handle) string {
		return k.label(u) + ":" + formatFloat(k.key[u])
	})
}

func (k *KeySets) FromString(s string) bool {
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
		u, ok := index(lbl, k.n)
		if !ok || !k.Valid(u) || seen[u] {
			return 0, false
		}
		seen[u] = true
		k.key[u] = kv
		return u, true
	}
	k.Clear()
	if !k.parseForest(newScanner(s), read) {
		k.Clear()
		return false
	}
	for u := Handle(1); u <= k.n; u++ {
		if k.IsRoot(u) {
			k.rebuildRank(u)
		}
	}
	return true
}

func (k *KeySets) Verify() string {
	if msg := k.BalancedForest.Verify(); msg != "" {
		return msg
	}
	for u := Handle(1); u <= k.n; u++ {
		if l := k.Left(u); l != 0 && !(k.key[l] <= k.key[u]) {
			return fmt.Sprintf("node %d: left child %d key %g exceeds %g", u, l, k.key[l], k.key[u])
		}
		if r := k.Right(u); r != 0 && !(k.key[r] >= k.key[u]) {
			return fmt.Sprintf("node %d: right child %d key %g less than %g", u, r, k.key[r], k.key[u])
		}
	}
	return ""
}

// DualKeySets tracks a secondary key k2 alongside the primary
// ordering key, maintaining minKey2[u] = min(k2) over u's subtree (and
// the handle realizing it) so that findmin can answer a bounded
// secondary-key query in O(log n).
type DualKeySets struct {
	KeySets
	key2          []float32
	minKey2       []float32
	minKey2Handle []Handle
}

func NewDualKeySets(n Handle) *DualKeySets {
	d := &DualKeySets{}
	d.Reset(n)
	return d
}

func (d *DualKeySets) Reset(n Handle) {
	d.KeySets.Reset(n)
	d.key2 = make([]float32, n+1)
	d.minKey2 = make([]float32, n+1)
	d.minKey2Handle = make([]Handle, n+1)
	for u := range d.minKey2Handle {
		d.minKey2Handle[u] = Handle(u)
	}
}

func (d *DualKeySets) Expand(n Handle) {
	d.KeySets.Expand(n)
	nk2 := make([]float32, d.n+1)
	nmk2 := make([]float32, d.n+1)
	nmkh := make([]Handle, d.n+1)
	copy(nk2, d.key2)
	copy(nmk2, d.minKey2)
	copy(nmkh, d.minKey2Handle)
	for u := len(d.minKey2Handle); u < len(nmkh); u++ {
		nmkh[u] = Handle(u)
	}
	d.key2, d.minKey2, d.minKey2Handle = nk2, nmk2, nmkh
}

func (d *DualKeySets) Clear() {
	d.KeySets.Clear()
	for i := range d.key2 {
		d.key2[i], d.minKey2[i], d.minKey2Handle[i] = 0, 0, Handle(i)
	}
}

func (d *DualKeySets) Assign(other *DualKeySets) {
	d.KeySets.Assign(&other.KeySets)
	d.key2 = append([]float32(nil), other.key2...)
	d.minKey2 = append([]float32(nil), other.minKey2...)
	d.minKey2Handle = append([]Handle(nil), other.minKey2Handle...)
}

func (d *DualKeySets) Transfer(other *DualKeySets) {
	d.KeySets.Transfer(&other.KeySets)
	d.key2, d.minKey2, d.minKey2Handle = other.key2, other.minKey2, other.minKey2Handle
	other.key2, other.minKey2, other.minKey2Handle = nil, nil, nil
}

// Key2 returns u's secondary key.
func (d *DualKeySets) Key2(u Handle) float32 {
	d.checkHandle(u)
	return d.key2[u]
}

// refresh recomputes minKey2 from u up to the root, restoring the
// subtree aggregate along the ancestor chain of a changed node. Each
// ancestor's children are recomputed before the ancestor itself, since
// a rebalancing rotation can move a node off that chain. On equal
// values the left subtree wins over the node, and the node over the
// right subtree, so the aggregate names the leftmost minimum.
func (d *DualKeySets) refresh(u Handle) {
	fix := func(v Handle) {
		bestH, bestV := v, d.key2[v]
		if l := d.Left(v); l != 0 && d.minKey2[l] <= bestV {
			bestH, bestV = d.minKey2Handle[l], d.minKey2[l]
		}
		if r := d.Right(v); r != 0 && d.minKey2[r] < bestV {
			bestH, bestV = d.minKey2Handle[r], d.minKey2[r]
		}
		d.minKey2[v] = bestV
		d.minKey2Handle[v] = bestH
	}
	for u != 0 {
		if l := d.Left(u); l != 0 {
			fix(l)
		}
		if r := d.Right(u); r != 0 {
			fix(r)
		}
		fix(u)
		u = d.Parent(u)
	}
}

// Insert adds singleton u with primary key k and secondary key k2.
func (d *DualKeySets) Insert(u, t Handle, k, k2 float32) Handle {
	d.key[u] = k
	d.key2[u] = k2
	d.minKey2[u] = k2
	d.minKey2Handle[u] = u
	newRoot := d.BalancedForest.InsertByKey(u, t, d.cmp)
	d.refresh(u)
	return newRoot
}

// Delete removes u from the tree rooted at t, refreshing minKey2 from
// the splice point up.
func (d *DualKeySets) Delete(u, t Handle) Handle {
	newT, c, pc, side := d.spliceOut(u, t)
	d.key2[u], d.minKey2[u], d.minKey2Handle[u] = 0, 0, u
	if pc != 0 {
		d.rerankDown(c, pc, side)
		d.refresh(pc)
		return d.Find(pc)
	}
	if newT != 0 {
		d.refresh(newT)
		return d.Find(newT)
	}
	return 0
}

// rangeMin returns the node of smallest key2 within subtree v whose
// primary key is <= bound, or ok=false if none qualifies. Ties favor
// the leftmost (earliest infix) node.
func (d *DualKeySets) rangeMin(v Handle, bound float32) (h Handle, val float32, ok bool) {
	if v == 0 {
		return 0, 0, false
	}
	if d.key[v] > bound {
		return d.rangeMin(d.Left(v), bound)
	}
	if l := d.Left(v); l != 0 {
		h, val, ok = d.minKey2Handle[l], d.minKey2[l], true
	}
	if !ok || d.key2[v] < val {
		h, val, ok = v, d.key2[v], true
	}
	if r := d.Right(v); r != 0 {
		if rh, rv, rok := d.rangeMin(r, bound); rok && (!ok || rv < val) {
			h, val, ok = rh, rv, true
		}
	}
	return h, val, ok
}

// FindMin returns the item of smallest secondary key among those in t
// with primary key <= bound, or 0 if none qualify.
func (d *DualKeySets) FindMin(t Handle, bound float32) Handle {
	h, _, ok := d.rangeMin(t, bound)
	if !ok {
		return 0
	}
	return h
}

func (d *DualKeySets) ToString(flags int) string {
	return d.BinaryForest.ToString(flags, func(u Handle) string {
		return fmt.Sprintf("%s:%s:%s", d.label(u), formatFloat(d.key[u]), formatFloat(d.key2[u]))
	})
}

func (d *DualKeySets) FromString(s string) bool {
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
		if !sc.eat(':') {
			return 0, false
		}
		k2v, ok := sc.readFloat()
		if !ok {
			return 0, false
		}
		u, ok := index(lbl, d.n)
		if !ok || !d.Valid(u) || seen[u] {
			return 0, false
		}
		seen[u] = true
		d.key[u] = kv
		d.key2[u] = k2v
		return u, true
	}
	d.Clear()
	if !d.parseForest(newScanner(s), read) {
		d.Clear()
		return false
	}
	for u := Handle(1); u <= d.n; u++ {
		if d.IsRoot(u) {
			d.rebuildRank(u)
			d.rebuildMinKey2(u)
		}
	}
	return true
}

// rebuildMinKey2 recomputes minKey2 bottom-up over an entire subtree,
// used after a bulk load (fromString) where refresh's incremental
// upward walk doesn't visit every node.
func (d *DualKeySets) rebuildMinKey2(u Handle) {
	if u == 0 {
		return
	}
	d.rebuildMinKey2(d.Left(u))
	d.rebuildMinKey2(d.Right(u))
	best, bestH := d.key2[u], u
	if l := d.Left(u); l != 0 && d.minKey2[l] <= best {
		best, bestH = d.minKey2[l], d.minKey2Handle[l]
	}
	if r := d.Right(u); r != 0 && d.minKey2[r] < best {
		best, bestH = d.minKey2[r], d.minKey2Handle[r]
	}
	d.minKey2[u] = best
	d.minKey2Handle[u] = bestH
}

func (d *DualKeySets) Verify() string {
	if msg := d.KeySets.Verify(); msg != "" {
		return msg
	}
	for u := Handle(1); u <= d.n; u++ {
		want := d.key2[u]
		wantH := u
		if l := d.Left(u); l != 0 && d.minKey2[l] <= want {
			want, wantH = d.minKey2[l], d.minKey2Handle[l]
		}
		if r := d.Right(u); r != 0 && d.minKey2[r] < want {
			want, wantH = d.minKey2[r], d.minKey2Handle[r]
		}
		if d.minKey2[u] != want || d.minKey2Handle[u] != wantH {
			return fmt.Sprintf("node %d: minKey2 %g (handle %d) inconsistent with subtree, want %g (handle %d)",
				u, d.minKey2[u], d.minKey2Handle[u], want, wantH)
		}
	}
	return ""
}
