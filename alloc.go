package marena

import (
	"unsafe"

	"marena/utils"
)

// Alloc returns a fresh n-byte region from the arena, aligned to Alignment.
// A request of zero or less returns nil ("no allocation"). When the tail
// block is exhausted the chain grows; if the backing cannot supply a new
// block, Alloc returns nil and previously returned regions stay valid.
func (a *Arena) Alloc(n int) []byte {
	a.assertOpen()
	if n <= 0 {
		return nil
	}
	step := utils.AlignUp(n, Alignment)

	t := a.tail()
	off := utils.AlignUp(t.off, Alignment)
	if off+step > t.cap() {
		if err := a.grow(step); err != nil {
			_ = utils.Err(err)
			return nil
		}
		t = a.tail()
		off = 0
	}
	t.last = off
	t.off = off + step
	return t.buf[off : off+n : off+n]
}

// Calloc returns a zero-filled region of count*size bytes. The product must
// not overflow int; that is a precondition, not a handled error.
func (a *Arena) Calloc(count, size int) []byte {
	if count <= 0 || size <= 0 {
		return nil
	}
	total := count * size
	utils.CondPanic(total/size != count, utils.ErrIntOverflow)
	b := a.Alloc(total)
	if b != nil {
		// blocks are reused after rewind, so the region may hold old bytes
		clear(b)
	}
	return b
}

// DupBytes copies b into the arena and returns the copy. Empty input
// returns nil.
func (a *Arena) DupBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	dup := a.Alloc(len(b))
	if dup != nil {
		copy(dup, b)
	}
	return dup
}

// DupString copies s plus a NUL terminator into the arena, mirroring the C
// strdup contract. The returned slice has length len(s)+1.
func (a *Arena) DupString(s string) []byte {
	dup := a.Alloc(len(s) + 1)
	if dup != nil {
		copy(dup, s)
		dup[len(s)] = 0
	}
	return dup
}

// Realloc resizes old, whose size is len(old), to newSize bytes.
//
// newSize of zero or less behaves like a release request; individual
// release is unsupported, so it returns nil and the old bytes stay owned by
// the arena. A nil or empty old is a fresh Alloc. If old is the most recent
// allocation of its block, the block's cursor is adjusted in place, both
// for shrinking and for growing while the block has room. Every other case
// allocates anew and copies min(len(old), newSize) bytes; the old region
// becomes dead weight until the next rewind, reset or close.
//
// A rewind clears the containing block's most-recent-allocation record, so
// an allocation made before a marker push never resizes in place after that
// marker is popped, even when the cursor lands back on its end; it takes
// the copy path instead.
func (a *Arena) Realloc(old []byte, newSize int) []byte {
	a.assertOpen()
	if newSize <= 0 {
		return nil
	}
	if len(old) == 0 {
		return a.Alloc(newSize)
	}

	oldStep := utils.AlignUp(len(old), Alignment)
	newStep := utils.AlignUp(newSize, Alignment)
	if b := a.findBlock(old); b != nil && b.holdsLast(old, oldStep) {
		if b.last+newStep <= b.cap() {
			b.off = b.last + newStep
			return b.buf[b.last : b.last+newSize : b.last+newSize]
		}
		// last in its block but no room to grow in place
	}

	dup := a.Alloc(newSize)
	if dup != nil {
		copy(dup, old)
	}
	return dup
}

// findBlock returns the block whose span contains the first byte of p,
// or nil when p does not point into the arena.
func (a *Arena) findBlock(p []byte) *block {
	ptr := uintptr(unsafe.Pointer(&p[0]))
	for i := range a.blocks {
		b := &a.blocks[i]
		base := uintptr(unsafe.Pointer(&b.buf[0]))
		if ptr >= base && ptr < base+uintptr(b.cap()) {
			return b
		}
	}
	return nil
}

// holdsLast reports whether p is the block's most recent live allocation:
// it starts at last and its aligned extent reaches the cursor. Only then is
// in-place resizing sound, since the bump allocator cannot reclaim holes.
func (b *block) holdsLast(p []byte, alignedLen int) bool {
	return b.last+alignedLen == b.off &&
		uintptr(unsafe.Pointer(&p[0])) == uintptr(unsafe.Pointer(&b.buf[b.last]))
}
