// Copyright (C) 2026  grafalgo-go authors
//
// SPDX-License-Identifier: GPL-2.0-or-later

package forest

import (
	"strconv"
	"strings"
)

// scanner is the shared tokenizer used by every fromString parser in
// this package. It treats whitespace as a pure token separator and
// gives single-character punctuation ({ } [ ] ( ) : * ! @ -) meaning
// only at the call site; the scanner itself just knows how to peek
// and consume runes and "word" tokens (labels, keys).
type scanner struct {
	s   string
	pos int
}

func newScanner(s string) *scanner {
	return &scanner{s: s}
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r':
			sc.pos++
		default:
			return
		}
	}
}

// peek returns the next non-space byte without consuming it, or 0 at
// end of input.
func (sc *scanner) peek() byte {
	sc.skipSpace()
	if sc.pos >= len(sc.s) {
		return 0
	}
	return sc.s[sc.pos]
}

// eat consumes the next non-space byte if it equals b, returning
// whether it matched.
func (sc *scanner) eat(b byte) bool {
	if sc.peek() == b {
		sc.pos++
		return true
	}
	return false
}

// isWordByte reports whether b may appear inside a label/number token.
func isWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '.' || b == '-' || b == '+':
		return true
	}
	return false
}

// word reads a maximal run of word bytes, or "" if none are present.
func (sc *scanner) word() string {
	sc.skipSpace()
	start := sc.pos
	for sc.pos < len(sc.s) && isWordByte(sc.s[sc.pos]) {
		// a leading sign is only part of the word at its very start
		if (sc.s[sc.pos] == '-' || sc.s[sc.pos] == '+') && sc.pos != start {
			break
		}
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

// readInt reads a decimal integer token, reporting ok=false if the
// next token isn't one.
func (sc *scanner) readInt() (v int, ok bool) {
	w := sc.word()
	if w == "" {
		return 0, false
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return 0, false
	}
	return n, true
}

// readFloat reads a floating point token (used for keys), reporting
// ok=false if the next token isn't one.
func (sc *scanner) readFloat() (v float32, ok bool) {
	w := sc.word()
	if w == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(w, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// readLabel reads a node label token: either a run of lower-case
// letters (n<=26 convention) or a decimal integer, and returns the raw
// token; callers resolve it to a handle with index, which handles both
// conventions transparently.
func (sc *scanner) readLabel() (string, bool) {
	w := sc.word()
	if w == "" {
		return "", false
	}
	return w, true
}

// index resolves a label token back to a handle, given the current n
// (which determines whether labels are letters or digits).
func index(label string, n Handle) (Handle, bool) {
	if label == "" {
		return 0, false
	}
	if n <= 26 {
		if len(label) != 1 {
			return 0, false
		}
		c := label[0]
		if c < 'a' || c > 'z' {
			return 0, false
		}
		return Handle(c-'a') + 1, true
	}
	v, err := strconv.Atoi(label)
	if err != nil || v <= 0 {
		return 0, false
	}
	return Handle(v), true
}

// formatFloat renders a key the way every toString implementation in
// this package does: trim trailing zeroes but keep it parseable by
// readFloat.
func formatFloat(k float32) string {
	return strconv.FormatFloat(float64(k), 'g', -1, 32)
}

func trimToNull(s string) string {
	return strings.TrimRight(s, "\x00")
}
