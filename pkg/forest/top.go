// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package forest implements the forest-and-heap family: a balancing
// binary forest, the mergeable priority queues built on top of it
// (leftist heaps, lazy heaps, Fibonacci heaps), a d-ary array heap,
// and the two-level partitioned heap that combines an array heap of
// active groups with per-group ordered subheaps.
//
// Every structure in this package is indexed by a "handle", a
// non-zero integer in 1..=n; 0 is the universal null sentinel. All
// structures are single-threaded: one call at a time per instance,
// never shared across goroutines.
package forest

import "fmt"

// Handle identifies a node, item, or group within one of this
// package's structures. The zero Handle is the null sentinel.
type Handle = int32

// Null is the universal null handle.
const Null Handle = 0

// assertf panics (a fatal assertion, per the package's precondition
// contract) if cond is false. Precondition violations are programming
// errors, never recoverable at run time.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Errorf(format, args...))
	}
}

// growCapacity implements the capacity growth policy of
// BinaryForest.Expand and Forest.Expand, and so of the components
// built on them: grow to max(requested, 1.5*current). ArrayHeap.Expand
// and LazyHeaps.Expand compute their new sizes themselves.
func growCapacity(requested, current int) int {
	grown := current + current/2
	if requested > grown {
		return requested
	}
	return grown
}

// Top is the handle-range base embedded (directly or indirectly) by
// every structure in this package: it owns the valid index range
// 1..=n and the label formatting used by every toString/fromString
// implementation.
type Top struct {
	n Handle
}

func (t *Top) initTop(n Handle) {
	assertf(n >= 0, "Top: negative n %d", n)
	t.n = n
}

// N returns the declared index range of the structure: valid handles
// are 1..=N().
func (t *Top) N() Handle { return t.n }

// Valid reports whether u is a valid, in-range handle.
func (t *Top) Valid(u Handle) bool { return u > 0 && u <= t.n }

// label formats a handle the way toString does: lower-case letters
// for n<=26, decimal integers otherwise.
func (t *Top) label(u Handle) string {
	if t.n <= 26 && u > 0 {
		return string(rune('a' + int(u) - 1))
	}
	return fmt.Sprintf("%d", u)
}

// lettered reports whether labels for this instance's current n are
// rendered as lower-case letters (true) or decimal integers (false).
func (t *Top) lettered() bool { return t.n <= 26 }
