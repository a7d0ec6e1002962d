// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import "fmt"

// BalancedForest adds a per-node rank to BinaryForest and keeps it
// rank-balanced (the "weak AVL" / rank-balanced tree discipline):
// for every non-root u, rank[parent[u]] is rank[u] or rank[u]+1; for
// every grandchild g of r, rank[r] > rank[g]. Depth is O(log n).
type BalancedForest struct {
	BinaryForest
	rank []int32
}

// NewBalancedForest returns a forest of n singleton roots, each rank 1.
func NewBalancedForest(n Handle) *BalancedForest {
	b := &BalancedForest{}
	b.Reset(n)
	return b
}

func (b *BalancedForest) Reset(n Handle) {
	b.BinaryForest.Reset(n)
	b.rank = make([]int32, n+1)
	for i := Handle(1); i <= n; i++ {
		b.rank[i] = 1
	}
}

func (b *BalancedForest) Expand(n Handle) {
	old := b.n
	b.BinaryForest.Expand(n)
	nr := make([]int32, b.n+1)
	copy(nr, b.rank)
	for i := old + 1; i <= b.n; i++ {
		nr[i] = 1
	}
	b.rank = nr
}

func (b *BalancedForest) Clear() {
	b.BinaryForest.Clear()
	for i := range b.rank {
		if Handle(i) >= 1 {
			b.rank[i] = 1
		}
	}
}

func (b *BalancedForest) Assign(other *BalancedForest) {
	b.BinaryForest.Assign(&other.BinaryForest)
	b.rank = append([]int32(nil), other.rank...)
}

func (b *BalancedForest) Transfer(other *BalancedForest) {
	b.BinaryForest.Transfer(&other.BinaryForest)
	b.rank = other.rank
	other.rank = nil
}

// Rank returns u's rank.
func (b *BalancedForest) Rank(u Handle) int32 {
	b.checkHandle(u)
	return b.rank[u]
}

// rankOf is Rank extended with rank(0) = 0, used throughout the
// rebalancing logic where a missing child stands in for a node.
func (b *BalancedForest) rankOf(u Handle) int32 {
	if u == 0 {
		return 0
	}
	return b.rank[u]
}

// nephewNiece returns, for sibling s of a node on the given side, the
// "nephew" (s's child further from that node) and "niece" (s's child
// nearer to it) used by rerankDown.
func (b *BalancedForest) nephewNiece(s Handle, side int8) (nephew, niece Handle) {
	if side < 0 {
		return b.right[s], b.left[s]
	}
	return b.left[s], b.right[s]
}

// InsertByKey inserts singleton u (given rank 1) into the tree rooted
// at t via standard BST insertion, then rebalances with rerankUp.
// Returns the new root.
func (b *BalancedForest) InsertByKey(u, t Handle, cmp func(a, c Handle) int) Handle {
	b.rank[u] = 1
	b.BinaryForest.InsertByKey(u, t, cmp)
	b.rerankUp(u)
	return b.Find(u)
}

// Delete removes u, then rebalances with rerankDown from the child
// that replaced it. Returns the new root.
func (b *BalancedForest) Delete(u, t Handle) Handle {
	newT, c, pc, side := b.spliceOut(u, t)
	if pc != 0 {
		b.rerankDown(c, pc, side)
		return b.Find(pc)
	}
	if newT != 0 {
		return b.Find(newT)
	}
	return 0
}

// spliceOut is BinaryForest.spliceOut with ranks kept on positions:
// when u has two children it first trades places with prev(u), so the
// two nodes trade ranks as well.
func (b *BalancedForest) spliceOut(u, t Handle) (newT, c, pc Handle, side int8) {
	if b.left[u] != 0 && b.right[u] != 0 {
		w := b.Prev(u, 0)
		b.rank[u], b.rank[w] = b.rank[w], b.rank[u]
	}
	return b.BinaryForest.spliceOut(u, t)
}

// joinExtreme handles Join when one side is empty: u is attached as
// the new first (asFirst) or last leaf of t, then rerankUp restores
// the invariant. Used because the spine-walk in Join's general case
// has no rank-0 node to terminate at when one operand is empty.
func (b *BalancedForest) joinExtreme(u, t Handle, asFirst bool) Handle {
	b.rank[u] = 1
	if t == 0 {
		return u
	}
	var v Handle
	if asFirst {
		v = b.First(t)
		b.left[v] = u
	} else {
		v = b.Last(t)
		b.right[v] = u
	}
	b.parent[u] = v
	b.rerankUp(u)
	return b.Find(u)
}

// Join joins t1 < u < t2 (u a singleton) into one balanced tree,
// splicing u onto the shorter tree's spine when ranks differ.
func (b *BalancedForest) Join(t1, u, t2 Handle) Handle {
	if t1 == 0 {
		return b.joinExtreme(u, t2, true)
	}
	if t2 == 0 {
		return b.joinExtreme(u, t1, false)
	}
	r1, r2 := b.rankOf(t1), b.rankOf(t2)
	switch {
	case r1 == r2:
		b.BinaryForest.Join(t1, u, t2)
		b.rank[u] = r1 + 1
		return u
	case r1 > r2:
		v := t1
		for b.rankOf(v) != r2 {
			v = b.right[v]
		}
		p := b.parent[v]
		b.left[u] = v
		b.right[u] = t2
		b.parent[v] = u
		if t2 != 0 {
			b.parent[t2] = u
		}
		b.rank[u] = r2 + 1
		if p <= 0 {
			b.parent[u] = p
		} else {
			b.right[p] = u
			b.parent[u] = p
		}
		b.rerankUp(u)
		return b.Find(u)
	default:
		v := t2
		for b.rankOf(v) != r1 {
			v = b.left[v]
		}
		p := b.parent[v]
		b.right[u] = v
		b.left[u] = t1
		b.parent[v] = u
		if t1 != 0 {
			b.parent[t1] = u
		}
		b.rank[u] = r1 + 1
		if p <= 0 {
			b.parent[u] = p
		} else {
			b.left[p] = u
			b.parent[u] = p
		}
		b.rerankUp(u)
		return b.Find(u)
	}
}

// splitBalanced is BinaryForest.Split generalized to rejoin each
// severed ancestor with the rank-aware Join, so the two pieces remain
// properly rank-balanced (plain BinaryForest.Split does not preserve
// the rank invariant since it always rejoins with the unbalanced Join).
func (b *BalancedForest) splitBalanced(u Handle) (Handle, Handle) {
	b.checkHandle(u)
	L := b.left[u]
	R := b.right[u]
	if L != 0 {
		b.parent[L] = 0
	}
	if R != 0 {
		b.parent[R] = 0
	}
	v, p := u, b.parent[u]
	for p > 0 {
		gp := b.parent[p]
		if b.left[p] == v {
			rsub := b.right[p]
			if rsub != 0 {
				b.parent[rsub] = 0
			}
			b.left[p], b.right[p], b.parent[p] = 0, 0, 0
			b.rank[p] = 1
			R = b.Join(R, p, rsub)
		} else {
			lsub := b.left[p]
			if lsub != 0 {
				b.parent[lsub] = 0
			}
			b.left[p], b.right[p], b.parent[p] = 0, 0, 0
			b.rank[p] = 1
			L = b.Join(lsub, p, L)
		}
		v = p
		p = gp
	}
	b.left[u], b.right[u], b.parent[u] = 0, 0, 0
	b.rank[u] = 1
	return L, R
}

// rerankUp restores the rank invariant upward from a freshly-inserted
// or promoted node x.
func (b *BalancedForest) rerankUp(x Handle) {
	for {
		gp := b.Grandparent(x)
		if gp == 0 {
			break
		}
		p := b.Parent(x)
		aunt := b.Sibling(p)
		if b.rank[gp] == b.rank[x] && b.rankOf(aunt) == b.rank[x] {
			x = gp
			b.rank[x]++
			b.steps++
			continue
		}
		break
	}
	gp := b.Grandparent(x)
	if gp == 0 || b.rank[gp] != b.rank[x] {
		return
	}
	p := b.Parent(x)
	if b.isOuterGrandchild(x) {
		b.Rotate(p)
	} else {
		b.Rotate(x)
		b.Rotate(x)
	}
}

// rerankDown restores the rank invariant downward from the child x
// (possibly 0) that replaced a deleted node under new parent px, on
// the given side of px.
func (b *BalancedForest) rerankDown(x, px Handle, side int8) {
	for px != 0 {
		rx := b.rankOf(x)
		if b.rank[px] != rx+2 {
			return
		}
		b.steps++
		var s Handle
		if side < 0 {
			s = b.right[px]
		} else {
			s = b.left[px]
		}
		nephew, niece := b.nephewNiece(s, side)

		if b.rank[s] == rx+2 {
			b.Rotate(s)
			continue
		}
		if b.rank[s] == rx+1 && b.rankOf(nephew) == rx && b.rankOf(niece) == rx {
			b.rank[px]--
			x = px
			npx := b.Parent(px)
			if npx == 0 {
				return
			}
			if b.left[npx] == px {
				side = -1
			} else {
				side = 1
			}
			px = npx
			continue
		}
		if b.rankOf(nephew) == rx+1 {
			b.Rotate(s)
			b.rank[s]++
			b.rank[px]--
		} else {
			b.Rotate2(niece)
			b.rank[niece]++
			b.rank[px]--
		}
		return
	}
}

// rebuildRank recomputes the rank invariant bottom-up from an
// already-fixed tree shape, mirroring LeftistHeaps.rebuildRank's
// post-order reconstruction. Used after FromString, whose text format
// carries no rank information: a leaf gets rank 1, and an internal
// node's rank is pinned from its children's ranks so both the
// parent-child and grandparent-grandchild invariants hold for the
// shape as parsed. Valid for any shape reachable by InsertByKey/Join
// alone (the insert-only case, which behaves like a plain AVL tree);
// a shape bearing delete-induced rank relaxations may need a rank this
// reconstruction can't recover exactly, though Verify may still accept
// the substitute it picks.
func (b *BalancedForest) rebuildRank(u Handle) int32 {
	if u == 0 {
		return 0
	}
	l, r := b.left[u], b.right[u]
	switch {
	case l == 0 && r == 0:
		b.rank[u] = 1
	case l == 0:
		b.rank[u] = b.rebuildRank(r) + 1
	case r == 0:
		b.rank[u] = b.rebuildRank(l) + 1
	default:
		rl := b.rebuildRank(l)
		rr := b.rebuildRank(r)
		switch {
		case rl == rr:
			b.rank[u] = rl + 1
		case rl > rr:
			b.rank[u] = rl
		default:
			b.rank[u] = rr
		}
	}
	return b.rank[u]
}

// Verify extends BinaryForest.Verify with the rank invariant.
func (b *BalancedForest) Verify() string {
	if msg := b.BinaryForest.Verify(); msg != "" {
		return msg
	}
	for u := Handle(1); u <= b.n; u++ {
		if !b.IsRoot(u) {
			p := b.Parent(u)
			if b.rank[p] != b.rank[u] && b.rank[p] != b.rank[u]+1 {
				return fmt.Sprintf("node %d: rank %d incompatible with parent %d rank %d", u, b.rank[u], p, b.rank[p])
			}
		}
		if gp := b.Grandparent(u); gp != 0 {
			if b.rank[gp] <= b.rank[u] {
				return fmt.Sprintf("node %d: rank %d not less than grandparent %d rank %d", u, b.rank[u], gp, b.rank[gp])
			}
		}
	}
	return ""
}
