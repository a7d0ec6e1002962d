// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import "fmt"

// Forest is a general rooted k-ary forest represented with sibling
// lists instead of binary child pointers: each node's children form a
// circular doubly linked list anchored by the parent's firstChild and
// lastChild, and root nodes are grouped the same way into circular
// lists called groves. It is the structural substrate for FibHeaps,
// where a grove is a Fibonacci heap's top-level list of trees.
//
// A node with no siblings is its own one-element circular list:
// nextSibling[u] == prevSibling[u] == u.
type Forest struct {
	Top
	parent      []Handle
	firstChild  []Handle
	lastChild   []Handle
	nextSibling []Handle
	prevSibling []Handle
	steps       uint64
}

func NewForest(n Handle) *Forest {
	f := &Forest{}
	f.Reset(n)
	return f
}

func (f *Forest) Reset(n Handle) {
	f.initTop(n)
	f.parent = make([]Handle, n+1)
	f.firstChild = make([]Handle, n+1)
	f.lastChild = make([]Handle, n+1)
	f.nextSibling = make([]Handle, n+1)
	f.prevSibling = make([]Handle, n+1)
	for i := Handle(1); i <= n; i++ {
		f.nextSibling[i], f.prevSibling[i] = i, i
	}
	f.steps = 0
}

func (f *Forest) Expand(n Handle) {
	if n <= f.n {
		return
	}
	newCap := growCapacity(int(n), int(f.n))
	np := make([]Handle, newCap+1)
	nfc := make([]Handle, newCap+1)
	nlc := make([]Handle, newCap+1)
	nns := make([]Handle, newCap+1)
	nps := make([]Handle, newCap+1)
	copy(np, f.parent)
	copy(nfc, f.firstChild)
	copy(nlc, f.lastChild)
	copy(nns, f.nextSibling)
	copy(nps, f.prevSibling)
	for i := f.n + 1; Handle(i) <= Handle(newCap); i++ {
		nns[i], nps[i] = i, i
	}
	f.parent, f.firstChild, f.lastChild = np, nfc, nlc
	f.nextSibling, f.prevSibling = nns, nps
	f.n = Handle(newCap)
}

func (f *Forest) Clear() {
	for i := range f.parent {
		f.parent[i], f.firstChild[i], f.lastChild[i] = 0, 0, 0
		f.nextSibling[i], f.prevSibling[i] = Handle(i), Handle(i)
	}
	f.steps = 0
}

func (f *Forest) Assign(other *Forest) {
	f.Reset(other.n)
	copy(f.parent, other.parent)
	copy(f.firstChild, other.firstChild)
	copy(f.lastChild, other.lastChild)
	copy(f.nextSibling, other.nextSibling)
	copy(f.prevSibling, other.prevSibling)
	f.steps = other.steps
}

func (f *Forest) Transfer(other *Forest) {
	f.Top = other.Top
	f.parent, f.firstChild, f.lastChild = other.parent, other.firstChild, other.lastChild
	f.nextSibling, f.prevSibling = other.nextSibling, other.prevSibling
	f.steps = other.steps
	other.parent, other.firstChild, other.lastChild = nil, nil, nil
	other.nextSibling, other.prevSibling = nil, nil
	other.n, other.steps = 0, 0
}

func (f *Forest) GetStats() Stats { return Stats{Steps: f.steps} }

func (f *Forest) checkHandle(u Handle) { assertf(f.Valid(u), "invalid handle %d", u) }

func (f *Forest) Parent(u Handle) Handle      { f.checkHandle(u); return f.parent[u] }
func (f *Forest) FirstChild(u Handle) Handle  { f.checkHandle(u); return f.firstChild[u] }
func (f *Forest) LastChild(u Handle) Handle   { f.checkHandle(u); return f.lastChild[u] }
func (f *Forest) NextSibling(u Handle) Handle { f.checkHandle(u); return f.nextSibling[u] }
func (f *Forest) PrevSibling(u Handle) Handle { f.checkHandle(u); return f.prevSibling[u] }
func (f *Forest) IsRoot(u Handle) bool        { f.checkHandle(u); return f.parent[u] == 0 }

// Root walks up from u to its tree's root.
func (f *Forest) Root(u Handle) Handle {
	for f.parent[u] != 0 {
		u = f.parent[u]
	}
	return u
}

// Link attaches root u, a singleton (self-circular) tree, as the new
// last child of v. Callers that want to move a root participating in
// a grove must Remove it first.
func (f *Forest) Link(u, v Handle) {
	assertf(f.parent[u] == 0, "Link: %d is not a root", u)
	assertf(f.nextSibling[u] == u, "Link: %d is not a singleton", u)
	assertf(u != v, "Link: cannot link %d to itself", u)
	f.parent[u] = v
	if f.firstChild[v] == 0 {
		f.firstChild[v], f.lastChild[v] = u, u
	} else {
		first, last := f.firstChild[v], f.lastChild[v]
		f.nextSibling[last], f.prevSibling[u] = u, last
		f.nextSibling[u], f.prevSibling[first] = first, u
		f.lastChild[v] = u
	}
	f.steps++
}

// Cut detaches non-root u from its parent, leaving it a singleton
// root. Returns u.
func (f *Forest) Cut(u Handle) Handle {
	p := f.parent[u]
	assertf(p != 0, "Cut: %d is already a root", u)
	next, prev := f.nextSibling[u], f.prevSibling[u]
	if next == u {
		f.firstChild[p], f.lastChild[p] = 0, 0
	} else {
		f.nextSibling[prev], f.prevSibling[next] = next, prev
		if f.firstChild[p] == u {
			f.firstChild[p] = next
		}
		if f.lastChild[p] == u {
			f.lastChild[p] = prev
		}
	}
	f.parent[u] = 0
	f.nextSibling[u], f.prevSibling[u] = u, u
	f.steps++
	return u
}

// Rotate moves u to the front of its parent's child list; a no-op if
// u is a root (picking which member of a grove is "first" is purely
// the caller's bookkeeping, since the grove's sibling list is
// circular).
func (f *Forest) Rotate(u Handle) {
	if p := f.parent[u]; p != 0 {
		f.firstChild[p] = u
		f.lastChild[p] = f.prevSibling[u]
		f.steps++
	}
}

// CombineGroves splices the circular root-list containing r2 into the
// one containing r1, producing a single larger grove. Returns a
// representative handle of the combined grove (r1, unless it was 0).
func (f *Forest) CombineGroves(r1, r2 Handle) Handle {
	if r1 == 0 {
		return r2
	}
	if r2 == 0 {
		return r1
	}
	a, b := f.nextSibling[r1], f.nextSibling[r2]
	f.nextSibling[r1], f.prevSibling[b] = b, r1
	f.nextSibling[r2], f.prevSibling[a] = a, r2
	f.steps++
	return r1
}

// Remove splits root r out of the grove represented by grove (any
// member of the same circular list), leaving r a singleton. Returns a
// representative of the remaining grove, or 0 if r was its sole member.
func (f *Forest) Remove(r, grove Handle) Handle {
	next, prev := f.nextSibling[r], f.prevSibling[r]
	f.steps++
	if next == r {
		return 0
	}
	f.nextSibling[prev], f.prevSibling[next] = next, prev
	f.nextSibling[r], f.prevSibling[r] = r, r
	if grove == r {
		return next
	}
	return grove
}

// First returns root, the start of prefix order over its subtree.
func (f *Forest) First(root Handle) Handle { f.checkHandle(root); return root }

// Next returns the prefix-order (preorder) successor of u within the
// subtree rooted at root, or 0 if u is the last node visited.
func (f *Forest) Next(u, root Handle) Handle {
	if c := f.firstChild[u]; c != 0 {
		return c
	}
	for u != root {
		p := f.parent[u]
		if ns := f.nextSibling[u]; ns != f.firstChild[p] {
			return ns
		}
		u = p
	}
	return 0
}

// FirstLeaf returns the leftmost leaf of the subtree rooted at root.
func (f *Forest) FirstLeaf(root Handle) Handle {
	u := root
	for f.firstChild[u] != 0 {
		u = f.firstChild[u]
	}
	return u
}

// NextLeaf returns the next leaf, in left-to-right order, after u
// within the subtree rooted at root.
func (f *Forest) NextLeaf(u, root Handle) Handle {
	v := f.Next(u, root)
	for v != 0 && f.firstChild[v] != 0 {
		v = f.Next(v, root)
	}
	return v
}

// Verify checks sibling-list and parent-pointer consistency.
func (f *Forest) Verify() string {
	for u := Handle(1); u <= f.n; u++ {
		if f.nextSibling[f.prevSibling[u]] != u || f.prevSibling[f.nextSibling[u]] != u {
			return fmt.Sprintf("node %d: sibling list is not consistently linked", u)
		}
	}
	state := make([]int8, f.n+1)
	for u := Handle(1); u <= f.n; u++ {
		c := f.firstChild[u]
		if c == 0 {
			continue
		}
		for {
			if f.parent[c] != u {
				return fmt.Sprintf("node %d: child %d does not report %d as parent", u, c, u)
			}
			state[c]++
			if state[c] > 1 {
				return fmt.Sprintf("node %d: cycle detected in child list", u)
			}
			c = f.nextSibling[c]
			if c == f.firstChild[u] {
				break
			}
		}
		if f.prevSibling[f.firstChild[u]] != f.lastChild[u] {
			return fmt.Sprintf("node %d: lastChild inconsistent with circular child list", u)
		}
	}
	for u := Handle(1); u <= f.n; u++ {
		v, depth := u, 0
		for f.parent[v] != 0 {
			v = f.parent[v]
			depth++
			if depth > int(f.n) {
				return fmt.Sprintf("node %d: cycle detected via parent chain", u)
			}
		}
	}
	return ""
}
