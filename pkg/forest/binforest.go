// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"fmt"
	"math/rand"
	"strings"
)

// Stats reports the monotonically-increasing operation counters kept
// by every structure in this package. Not every field is meaningful
// for every structure; a component only populates the counters it
// tracks and leaves the rest zero.
type Stats struct {
	Steps            uint64
	Rotations        uint64
	MeldSteps        uint64
	DecreaseSteps    uint64
	PurgeSteps       uint64
	ConsolidateSteps uint64
}

// BinaryForest partitions the handle range 1..=n into binary trees,
// represented as parallel left/right/parent arrays. A tree root's
// parent field is <= 0, and -parent is an optional non-negative
// "tree property"; a non-root's parent field is its (positive) parent
// handle.
type BinaryForest struct {
	Top
	left, right, parent []Handle
	steps, rotations    uint64
}

// NewBinaryForest returns a forest of n singleton roots.
func NewBinaryForest(n Handle) *BinaryForest {
	f := &BinaryForest{}
	f.Reset(n)
	return f
}

// Reset reallocates the forest for a new n as a forest of singleton roots.
func (f *BinaryForest) Reset(n Handle) {
	assertf(n >= 0, "BinaryForest.Reset: negative n %d", n)
	f.initTop(n)
	f.left = make([]Handle, n+1)
	f.right = make([]Handle, n+1)
	f.parent = make([]Handle, n+1)
	f.steps, f.rotations = 0, 0
}

// Expand grows the forest in place to at least n, preserving content.
func (f *BinaryForest) Expand(n Handle) {
	if n <= f.n {
		return
	}
	newCap := Handle(growCapacity(int(n), int(f.n)))
	nl := make([]Handle, newCap+1)
	nr := make([]Handle, newCap+1)
	np := make([]Handle, newCap+1)
	copy(nl, f.left)
	copy(nr, f.right)
	copy(np, f.parent)
	f.left, f.right, f.parent = nl, nr, np
	f.n = newCap
}

// Clear returns every node to singleton-root state, without reallocating.
func (f *BinaryForest) Clear() {
	for i := range f.left {
		f.left[i], f.right[i], f.parent[i] = 0, 0, 0
	}
}

// Assign deep-copies other's content into f.
func (f *BinaryForest) Assign(other *BinaryForest) {
	f.initTop(other.n)
	f.left = append([]Handle(nil), other.left...)
	f.right = append([]Handle(nil), other.right...)
	f.parent = append([]Handle(nil), other.parent...)
	f.steps, f.rotations = other.steps, other.rotations
}

// Transfer steals other's storage; other is left empty (n=0, nil arrays).
func (f *BinaryForest) Transfer(other *BinaryForest) {
	f.initTop(other.n)
	f.left, f.right, f.parent = other.left, other.right, other.parent
	f.steps, f.rotations = other.steps, other.rotations
	other.initTop(0)
	other.left, other.right, other.parent = nil, nil, nil
	other.steps, other.rotations = 0, 0
}

// GetStats returns the running operation counters.
func (f *BinaryForest) GetStats() Stats {
	return Stats{Steps: f.steps, Rotations: f.rotations}
}

func (f *BinaryForest) checkHandle(u Handle) {
	assertf(f.Valid(u), "forest: invalid handle %d (n=%d)", u, f.n)
}

// Left returns u's left child, or 0.
func (f *BinaryForest) Left(u Handle) Handle { f.checkHandle(u); return f.left[u] }

// Right returns u's right child, or 0.
func (f *BinaryForest) Right(u Handle) Handle { f.checkHandle(u); return f.right[u] }

// IsRoot reports whether u is the root of its tree.
func (f *BinaryForest) IsRoot(u Handle) bool { f.checkHandle(u); return f.parent[u] <= 0 }

// Parent returns u's parent, or 0 if u is a root.
func (f *BinaryForest) Parent(u Handle) Handle {
	f.checkHandle(u)
	if f.parent[u] <= 0 {
		return 0
	}
	return f.parent[u]
}

// Singleton reports whether u is a childless root.
func (f *BinaryForest) Singleton(u Handle) bool {
	return f.IsRoot(u) && f.left[u] == 0 && f.right[u] == 0
}

// Sibling returns the other child of u's parent, or 0 if u is a root
// or an only child.
func (f *BinaryForest) Sibling(u Handle) Handle {
	p := f.Parent(u)
	if p == 0 {
		return 0
	}
	if f.left[p] == u {
		return f.right[p]
	}
	return f.left[p]
}

// Grandparent returns parent(parent(u)), or 0 if fewer than two
// ancestors exist.
func (f *BinaryForest) Grandparent(u Handle) Handle {
	p := f.Parent(u)
	if p == 0 {
		return 0
	}
	return f.Parent(p)
}

// OuterChild returns the child of u that sits on the same side u
// itself sits relative to its own parent (0 if u is a root or that
// child is absent).
func (f *BinaryForest) OuterChild(u Handle) Handle {
	p := f.Parent(u)
	if p == 0 {
		return 0
	}
	if f.left[p] == u {
		return f.left[u]
	}
	return f.right[u]
}

// InnerChild returns the child of u on the opposite side from OuterChild.
func (f *BinaryForest) InnerChild(u Handle) Handle {
	p := f.Parent(u)
	if p == 0 {
		return 0
	}
	if f.left[p] == u {
		return f.right[u]
	}
	return f.left[u]
}

// OuterGrandchild returns the "nephew" of u: the child of sibling(u)
// on the side furthest from u.
func (f *BinaryForest) OuterGrandchild(u Handle) Handle {
	s := f.Sibling(u)
	if s == 0 {
		return 0
	}
	return f.OuterChild(s)
}

// InnerGrandchild returns the "niece" of u: the child of sibling(u)
// on the side nearest to u.
func (f *BinaryForest) InnerGrandchild(u Handle) Handle {
	s := f.Sibling(u)
	if s == 0 {
		return 0
	}
	return f.InnerChild(s)
}

// isOuterGrandchild reports whether x sits on the same side of its
// parent as its parent sits of its own parent (the zig-zig case).
func (f *BinaryForest) isOuterGrandchild(x Handle) bool {
	p := f.Parent(x)
	if p == 0 {
		return false
	}
	gp := f.Parent(p)
	if gp == 0 {
		return false
	}
	return (f.left[p] == x) == (f.left[gp] == p)
}

// Property returns the tree property of root u (0 if never set).
func (f *BinaryForest) Property(u Handle) Handle {
	assertf(f.IsRoot(u), "Property: %d is not a root", u)
	return -f.parent[u]
}

// SetProperty sets the tree property of root u.
func (f *BinaryForest) SetProperty(u, p Handle) {
	assertf(f.IsRoot(u), "SetProperty: %d is not a root", u)
	assertf(p >= 0, "SetProperty: negative property %d", p)
	f.parent[u] = -p
}

// First returns the leftmost descendant of u (u itself if it has no
// left child).
func (f *BinaryForest) First(u Handle) Handle {
	f.checkHandle(u)
	for f.left[u] != 0 {
		u = f.left[u]
	}
	return u
}

// Last returns the rightmost descendant of u.
func (f *BinaryForest) Last(u Handle) Handle {
	f.checkHandle(u)
	for f.right[u] != 0 {
		u = f.right[u]
	}
	return u
}

// Find returns the root of u's tree.
func (f *BinaryForest) Find(u Handle) Handle {
	f.checkHandle(u)
	for !f.IsRoot(u) {
		u = f.parent[u]
	}
	return u
}

// Next returns the infix successor of u. If root is nonzero,
// iteration stays within root's subtree and returns 0 once exhausted;
// with root=0 it stops at 0 when u's whole tree is exhausted.
func (f *BinaryForest) Next(u, root Handle) Handle {
	f.checkHandle(u)
	if f.right[u] != 0 {
		return f.First(f.right[u])
	}
	v := u
	for {
		if v == root {
			return 0
		}
		p := f.Parent(v)
		if p == 0 {
			return 0
		}
		if f.left[p] == v {
			return p
		}
		v = p
	}
}

// Prev returns the infix predecessor of u, symmetric to Next.
func (f *BinaryForest) Prev(u, root Handle) Handle {
	f.checkHandle(u)
	if f.left[u] != 0 {
		return f.Last(f.left[u])
	}
	v := u
	for {
		if v == root {
			return 0
		}
		p := f.Parent(v)
		if p == 0 {
			return 0
		}
		if f.right[p] == v {
			return p
		}
		v = p
	}
}

// Search performs a standard BST lookup for key k in the tree rooted
// at t, using key(u) to read each visited node's key. Returns 0 if absent.
func (f *BinaryForest) Search(k float32, t Handle, key func(Handle) float32) Handle {
	for t != 0 {
		kt := key(t)
		switch {
		case k < kt:
			t = f.left[t]
		case k > kt:
			t = f.right[t]
		default:
			return t
		}
	}
	return 0
}

// Cut detaches u from its parent; u becomes a root. Returns u.
func (f *BinaryForest) Cut(u Handle) Handle {
	f.checkHandle(u)
	p := f.parent[u]
	if p <= 0 {
		return u
	}
	if f.left[p] == u {
		f.left[p] = 0
	} else if f.right[p] == u {
		f.right[p] = 0
	}
	f.parent[u] = 0
	return u
}

// Link makes root u (or 0) a child of v on the given side: -1 left,
// +1 right, 0 implementation-chosen (randomized when both are empty).
func (f *BinaryForest) Link(u, v Handle, side int) Handle {
	f.checkHandle(v)
	if u != 0 {
		f.checkHandle(u)
		assertf(f.IsRoot(u), "Link: %d is not a root", u)
	}
	switch {
	case side < 0:
		assertf(f.left[v] == 0, "Link: left(%d) occupied", v)
		f.left[v] = u
	case side > 0:
		assertf(f.right[v] == 0, "Link: right(%d) occupied", v)
		f.right[v] = u
	default:
		switch {
		case f.left[v] == 0 && f.right[v] == 0:
			if rand.Intn(2) == 0 {
				f.left[v] = u
			} else {
				f.right[v] = u
			}
		case f.left[v] == 0:
			f.left[v] = u
		default:
			assertf(f.right[v] == 0, "Link: no empty side at %d", v)
			f.right[v] = u
		}
	}
	if u != 0 {
		f.parent[u] = v
	}
	return v
}

// Swap exchanges u and v's positions within their (shared) tree,
// preserving the overall tree structure. Handles the case where one
// is the direct parent of the other.
func (f *BinaryForest) Swap(u, v Handle) {
	f.checkHandle(u)
	f.checkHandle(v)
	if u == v {
		return
	}
	pu, lu, ru := f.parent[u], f.left[u], f.right[u]
	pv, lv, rv := f.parent[v], f.left[v], f.right[v]

	setChild := func(parent, oldChild, newChild Handle) {
		if parent <= 0 {
			return
		}
		if f.left[parent] == oldChild {
			f.left[parent] = newChild
		} else if f.right[parent] == oldChild {
			f.right[parent] = newChild
		}
	}

	switch {
	case pu == v: // u is a child of v
		setChild(pv, v, u)
		f.parent[u] = pv
		if lv == u {
			f.left[u], f.right[u] = v, rv
			if rv != 0 {
				f.parent[rv] = u
			}
		} else {
			f.right[u], f.left[u] = v, lv
			if lv != 0 {
				f.parent[lv] = u
			}
		}
		f.left[v], f.right[v] = lu, ru
		if lu != 0 {
			f.parent[lu] = v
		}
		if ru != 0 {
			f.parent[ru] = v
		}
		f.parent[v] = u
	case pv == u: // v is a child of u
		setChild(pu, u, v)
		f.parent[v] = pu
		if lu == v {
			f.left[v], f.right[v] = u, ru
			if ru != 0 {
				f.parent[ru] = v
			}
		} else {
			f.right[v], f.left[v] = u, lu
			if lu != 0 {
				f.parent[lu] = v
			}
		}
		f.left[u], f.right[u] = lv, rv
		if lv != 0 {
			f.parent[lv] = u
		}
		if rv != 0 {
			f.parent[rv] = u
		}
		f.parent[u] = v
	default: // unrelated
		setChild(pu, u, v)
		setChild(pv, v, u)
		f.parent[v] = pu
		f.parent[u] = pv
		f.left[u], f.right[u] = lv, rv
		if lv != 0 {
			f.parent[lv] = u
		}
		if rv != 0 {
			f.parent[rv] = u
		}
		f.left[v], f.right[v] = lu, ru
		if lu != 0 {
			f.parent[lu] = v
		}
		if ru != 0 {
			f.parent[ru] = v
		}
	}
}

// Join makes singleton u the new root of a tree with t1 as its left
// subtree and t2 as its right subtree.
func (f *BinaryForest) Join(t1, u, t2 Handle) Handle {
	f.checkHandle(u)
	assertf(f.Singleton(u), "Join: %d is not a singleton", u)
	f.left[u] = t1
	f.right[u] = t2
	if t1 != 0 {
		f.parent[t1] = u
	}
	if t2 != 0 {
		f.parent[t2] = u
	}
	return u
}

// Split returns (L, R): a tree of all nodes preceding u in infix
// order, and a tree of all nodes following u. u becomes a singleton.
func (f *BinaryForest) Split(u Handle) (Handle, Handle) {
	f.checkHandle(u)
	L := f.left[u]
	R := f.right[u]
	if L != 0 {
		f.parent[L] = 0
	}
	if R != 0 {
		f.parent[R] = 0
	}
	v, p := u, f.parent[u]
	for p > 0 {
		gp := f.parent[p]
		if f.left[p] == v {
			rsub := f.right[p]
			if rsub != 0 {
				f.parent[rsub] = 0
			}
			f.left[p], f.right[p], f.parent[p] = 0, 0, 0
			R = f.Join(R, p, rsub)
		} else {
			lsub := f.left[p]
			if lsub != 0 {
				f.parent[lsub] = 0
			}
			f.left[p], f.right[p], f.parent[p] = 0, 0, 0
			L = f.Join(lsub, p, L)
		}
		v = p
		p = gp
	}
	f.left[u], f.right[u], f.parent[u] = 0, 0, 0
	return L, R
}

// Append concatenates u's tree followed by v's tree, preserving order.
func (f *BinaryForest) Append(u, v Handle) Handle {
	tu := f.Find(u)
	w := f.Last(tu)
	L, _ := f.Split(w)
	return f.Join(L, w, v)
}

// InsertAfter inserts singleton u immediately after v in the infix
// order of t (t is only consulted when v==0, to insert at the start).
func (f *BinaryForest) InsertAfter(u, v, t Handle) Handle {
	assertf(f.Singleton(u), "InsertAfter: %d is not a singleton", u)
	if v == 0 {
		if t == 0 {
			return u
		}
		w := f.First(t)
		f.left[w] = u
		f.parent[u] = w
		return f.Find(w)
	}
	if f.right[v] == 0 {
		f.right[v] = u
		f.parent[u] = v
	} else {
		w := f.First(f.right[v])
		f.left[w] = u
		f.parent[u] = w
	}
	return f.Find(v)
}

// InsertByKey inserts singleton u into the tree rooted at t (0 if
// empty), using cmp(u, existing) with the usual sign convention.
// Returns the new root.
func (f *BinaryForest) InsertByKey(u, t Handle, cmp func(a, b Handle) int) Handle {
	assertf(f.Singleton(u), "InsertByKey: %d is not a singleton", u)
	if t == 0 {
		return u
	}
	v := t
	for {
		if cmp(u, v) < 0 {
			if f.left[v] == 0 {
				f.left[v] = u
				f.parent[u] = v
				return t
			}
			v = f.left[v]
		} else {
			if f.right[v] == 0 {
				f.right[v] = u
				f.parent[u] = v
				return t
			}
			v = f.right[v]
		}
	}
}

// Delete removes u from the tree rooted at t (t==0 means find(u)).
// If u has two children it is first swapped with prev(u) so that it
// has at most one child. Returns the new root.
func (f *BinaryForest) Delete(u, t Handle) Handle {
	newT, _, _, _ := f.spliceOut(u, t)
	return newT
}

// spliceOut is Delete's mechanism, exposed so BalancedForest can learn
// which child (c) replaced u under which new parent (pc), on which
// side, in order to drive rerankDown. side is -1/+1 (the side c now
// occupies under pc); it is 0 when pc is 0 (u was the tree's root).
func (f *BinaryForest) spliceOut(u, t Handle) (newT, c, pc Handle, side int8) {
	f.checkHandle(u)
	if t == 0 {
		t = f.Find(u)
	}
	if f.left[u] != 0 && f.right[u] != 0 {
		w := f.Prev(u, 0)
		f.Swap(u, w)
		if t == u {
			t = w
		}
	}
	var child Handle
	if f.left[u] != 0 {
		child = f.left[u]
	} else {
		child = f.right[u]
	}
	p := f.parent[u]
	if child != 0 {
		f.parent[child] = p
	}
	if p <= 0 {
		if t == u {
			t = child
		}
		c, pc, side = child, 0, 0
	} else {
		if f.left[p] == u {
			f.left[p] = child
			side = -1
		} else {
			f.right[p] = child
			side = 1
		}
		c, pc = child, p
	}
	f.left[u], f.right[u], f.parent[u] = 0, 0, 0
	return t, c, pc, side
}

// Rotate performs a single rotation moving x into its parent's
// position, preserving infix order.
func (f *BinaryForest) Rotate(x Handle) {
	f.checkHandle(x)
	p := f.parent[x]
	assertf(p > 0, "Rotate: %d is a root", x)
	gp := f.parent[p]
	if f.left[p] == x {
		b := f.right[x]
		f.right[x] = p
		f.left[p] = b
		if b != 0 {
			f.parent[b] = p
		}
	} else {
		b := f.left[x]
		f.left[x] = p
		f.right[p] = b
		if b != 0 {
			f.parent[b] = p
		}
	}
	f.parent[p] = x
	if gp <= 0 {
		f.parent[x] = gp
	} else {
		if f.left[gp] == p {
			f.left[gp] = x
		} else {
			f.right[gp] = x
		}
		f.parent[x] = gp
	}
	f.rotations++
	f.steps++
}

// Rotate2 performs the standard double rotation that brings x to its
// grandparent's position: a zig-zig (rotate parent then x) if x is an
// outer grandchild, a zig-zag (rotate x twice) otherwise.
func (f *BinaryForest) Rotate2(x Handle) {
	p := f.parent[x]
	assertf(p > 0, "Rotate2: %d is a root", x)
	if f.isOuterGrandchild(x) {
		f.Rotate(p)
		f.Rotate(x)
	} else {
		f.Rotate(x)
		f.Rotate(x)
	}
}

// ToString renders the forest using the grammar documented in
// SPEC_FULL.md: "{ T1 T2 ... }" with each Ti = "[ Ei ]". Flags: 0x1
// newlines between trees, 0x2 include singletons, 0x4 show full tree
// structure (parens, "*" on roots, "-" for absent children).
func (f *BinaryForest) ToString(flags int, nodeLabel func(Handle) string) string {
	if nodeLabel == nil {
		nodeLabel = f.label
	}
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for u := Handle(1); u <= f.n; u++ {
		if !f.IsRoot(u) {
			continue
		}
		if f.Singleton(u) && flags&0x2 == 0 {
			continue
		}
		if !first {
			if flags&0x1 != 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		first = false
		if p := f.Property(u); p > 0 {
			fmt.Fprintf(&b, "%d", p)
		}
		b.WriteByte('[')
		b.WriteString(f.subtreeString(u, flags, nodeLabel, true))
		b.WriteByte(']')
	}
	b.WriteByte('}')
	return b.String()
}

func (f *BinaryForest) subtreeString(u Handle, flags int, nodeLabel func(Handle) string, isRoot bool) string {
	if u == 0 {
		if flags&0x4 != 0 {
			return "-"
		}
		return ""
	}
	label := nodeLabel(u)
	if isRoot && flags&0x4 != 0 {
		label = "*" + label
	}
	if f.left[u] == 0 && f.right[u] == 0 {
		return label
	}
	ls := f.subtreeString(f.left[u], flags, nodeLabel, false)
	rs := f.subtreeString(f.right[u], flags, nodeLabel, false)
	if flags&0x4 != 0 {
		if f.left[u] != 0 {
			ls = "(" + ls + ")"
		}
		if f.right[u] != 0 {
			rs = "(" + rs + ")"
		}
	}
	return ls + " " + label + " " + rs
}

// FromString parses the structural grammar produced by ToString with
// flags&0x4 set (the only form that unambiguously reconstructs parent
// assignments). On any syntax or semantic (duplicate handle) error it
// returns false and leaves the forest cleared.
func (f *BinaryForest) FromString(s string, nodeHandle func(label string) (Handle, bool)) bool {
	if nodeHandle == nil {
		nodeHandle = func(lbl string) (Handle, bool) { return index(lbl, f.n) }
	}
	seen := make(map[Handle]bool)
	read := func(sc *scanner) (Handle, bool) {
		sc.eat('*')
		lbl, ok := sc.readLabel()
		if !ok {
			return 0, false
		}
		u, ok := nodeHandle(lbl)
		if !ok || !f.Valid(u) || seen[u] {
			return 0, false
		}
		seen[u] = true
		return u, true
	}
	f.Clear()
	if f.parseForest(newScanner(s), read) {
		return true
	}
	f.Clear()
	return false
}

// parseForest parses "{ T1 T2 ... }" where each Ti is "[ Ei ]",
// delegating to read for the label at each node position. It is
// shared by every component whose fromString needs the same
// bracket/property grammar but a different node-label token (plain
// labels here; "label:key" for KeySets, etc).
func (f *BinaryForest) parseForest(sc *scanner, read func(*scanner) (Handle, bool)) bool {
	if !sc.eat('{') {
		return false
	}
	for sc.peek() != '}' {
		if sc.peek() == 0 {
			return false
		}
		var prop Handle
		if b := sc.peek(); b >= '0' && b <= '9' {
			v, ok := sc.readInt()
			if !ok {
				return false
			}
			prop = Handle(v)
		}
		if !sc.eat('[') {
			return false
		}
		root, ok := f.parseEi(sc, read)
		if !ok {
			return false
		}
		if !sc.eat(']') {
			return false
		}
		if root != 0 {
			f.parent[root] = -prop
		}
	}
	return sc.eat('}')
}

func (f *BinaryForest) parseEi(sc *scanner, read func(*scanner) (Handle, bool)) (Handle, bool) {
	if b := sc.peek(); b == '-' || b == '(' {
		c1, ok := f.parseChild(sc, read)
		if !ok {
			return 0, false
		}
		u, ok := read(sc)
		if !ok {
			return 0, false
		}
		c2, ok := f.parseChild(sc, read)
		if !ok {
			return 0, false
		}
		f.left[u] = c1
		f.right[u] = c2
		if c1 != 0 {
			f.parent[c1] = u
		}
		if c2 != 0 {
			f.parent[c2] = u
		}
		return u, true
	}
	return read(sc)
}

func (f *BinaryForest) parseChild(sc *scanner, read func(*scanner) (Handle, bool)) (Handle, bool) {
	if sc.eat('-') {
		return 0, true
	}
	if !sc.eat('(') {
		return 0, false
	}
	u, ok := f.parseEi(sc, read)
	if !ok {
		return 0, false
	}
	if !sc.eat(')') {
		return 0, false
	}
	return u, true
}

// Verify checks the universal BinaryForest invariants, returning a
// human-readable description of the first violation found, or "" if
// the forest is consistent.
func (f *BinaryForest) Verify() string {
	for u := Handle(1); u <= f.n; u++ {
		if l := f.left[u]; l != 0 && f.parent[l] != u {
			return fmt.Sprintf("node %d: left child %d has parent %d, want %d", u, l, f.parent[l], u)
		}
		if r := f.right[u]; r != 0 && f.parent[r] != u {
			return fmt.Sprintf("node %d: right child %d has parent %d, want %d", u, r, f.parent[r], u)
		}
		if !f.IsRoot(u) {
			p := f.parent[u]
			if f.left[p] != u && f.right[p] != u {
				return fmt.Sprintf("node %d: not a child of its parent %d", u, p)
			}
		}
	}
	state := make([]int8, f.n+1)
	for u := Handle(1); u <= f.n; u++ {
		if state[u] == 2 {
			continue
		}
		var path []Handle
		v := u
		for state[v] == 0 {
			state[v] = 1
			path = append(path, v)
			if f.IsRoot(v) {
				break
			}
			v = f.parent[v]
		}
		if state[v] == 1 && !f.IsRoot(v) {
			return fmt.Sprintf("node %d: cycle detected via parent pointers", u)
		}
		for _, x := range path {
			state[x] = 2
		}
	}
	return ""
}

// structEqual reports whether f and o have identical tree structure
// (same n, same left/right/parent arrays). Embedders build their
// Equals on top of this plus their own per-node fields.
func (f *BinaryForest) structEqual(o *BinaryForest) bool {
	if f.n != o.n {
		return false
	}
	for i := Handle(1); i <= f.n; i++ {
		if f.left[i] != o.left[i] || f.right[i] != o.right[i] || f.parent[i] != o.parent[i] {
			return false
		}
	}
	return true
}
