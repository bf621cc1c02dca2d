// Package intern deduplicates byte strings into an arena. Every distinct
// value is copied into the arena once; later lookups of equal bytes return
// the same arena-owned slice, so callers can compare interned values by
// their base pointer instead of by content.
package intern

import (
	"bytes"

	"github.com/cespare/xxhash/v2"

	"marena"
)

// Table maps xxhash digests to arena-owned canonical copies. Equal digests
// chain, so hash collisions stay correct. A Table is as single-owner as the
// arena underneath it.
type Table struct {
	arena   *marena.Arena
	entries map[uint64][][]byte
	n       int
}

func New(a *marena.Arena) *Table {
	return &Table{
		arena:   a,
		entries: make(map[uint64][][]byte),
	}
}

// Intern returns the canonical arena copy of b, copying it in on first
// sight. Empty input returns nil. Returns nil when the arena cannot grow.
//
// The canonical copies live in the arena: if the arena rewinds or resets
// past this table's entries, call Reset before interning again.
func (t *Table) Intern(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	h := xxhash.Sum64(b)
	for _, c := range t.entries[h] {
		if bytes.Equal(c, b) {
			return c
		}
	}
	dup := t.arena.DupBytes(b)
	if dup == nil {
		return nil
	}
	t.entries[h] = append(t.entries[h], dup)
	t.n++
	return dup
}

// InternString is Intern for string input without forcing the caller to
// convert first.
func (t *Table) InternString(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	h := xxhash.Sum64String(s)
	for _, c := range t.entries[h] {
		if string(c) == s {
			return c
		}
	}
	dup := t.arena.DupBytes([]byte(s))
	if dup == nil {
		return nil
	}
	t.entries[h] = append(t.entries[h], dup)
	t.n++
	return dup
}

// Len returns the number of distinct values interned.
func (t *Table) Len() int {
	return t.n
}

// Reset forgets every entry. It does not touch the arena; pair it with the
// arena rewind that invalidated the entries.
func (t *Table) Reset() {
	t.entries = make(map[uint64][][]byte)
	t.n = 0
}
