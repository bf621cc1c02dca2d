// Package marena implements a region (arena) allocator: a bump allocator
// over a chain of fixed-capacity blocks with marker-based checkpoint and
// rewind. Allocations are cheap pointer advances; reclaim happens in bulk,
// either back to a pushed marker or all the way to an empty arena.
//
// An Arena has exactly one logical owner. No operation is safe to call
// concurrently on the same arena; callers that share an arena across
// goroutines must synchronize externally. Memory returned by Alloc and its
// variants is owned by the arena and lives until a PopMarker, Reset or
// Close crosses its allocation point. There is no per-object free.
package marena

import (
	"marena/utils"

	"github.com/pkg/errors"
)

// block is one contiguous segment of the arena. off is the bump cursor,
// last is the start offset of the most recent allocation in this block.
// Blocks never carry markers, only the Arena does.
type block struct {
	buf  []byte
	off  int
	last int
}

func (b *block) cap() int {
	return len(b.buf)
}

// Arena is a chain of blocks, ordered root first, plus the marker stack.
// After Close every operation except Close itself panics.
type Arena struct {
	opt     *Options
	backing backing
	blocks  []block
	markers []int64
}

// New creates an arena whose root block holds initialSize bytes.
// A size of zero or less selects DefaultBlockSize.
func New(initialSize int64) (*Arena, error) {
	opt := DefaultOptions()
	opt.InitialSize = initialSize
	return NewWithOptions(opt)
}

func NewWithOptions(opt *Options) (*Arena, error) {
	size := opt.InitialSize
	if size <= 0 {
		size = DefaultBlockSize
	} else if size > maxBlockSize {
		size = maxBlockSize
	}
	if opt.BlockSize <= 0 {
		opt.BlockSize = DefaultBlockSize
	}
	markerCap := opt.MarkerCap
	if markerCap <= 0 {
		markerCap = InitialMarkerCap
	}

	a := &Arena{opt: opt, backing: pickBacking(opt)}
	buf, err := a.backing.acquire(int(size))
	if err != nil {
		// nothing else acquired yet, so there is nothing to unwind
		return nil, errors.Wrapf(utils.ErrBlockAlloc, "root block of %d bytes: %v", size, err)
	}
	a.blocks = []block{{buf: buf}}
	a.markers = make([]int64, 0, markerCap)
	return a, nil
}

// Close releases every block and the marker storage. Calling Close on a nil
// or already closed arena is a no-op. The arena must not be used afterwards.
func (a *Arena) Close() error {
	if a == nil || a.blocks == nil {
		return nil
	}
	var err error
	for i := range a.blocks {
		if e := a.backing.release(a.blocks[i].buf); e != nil && err == nil {
			err = errors.Wrap(utils.ErrMunmap, e.Error())
		}
	}
	a.blocks = nil
	a.markers = nil
	return err
}

func (a *Arena) assertOpen() {
	utils.CondPanic(a.blocks == nil, utils.ErrArenaClosed)
}

func (a *Arena) tail() *block {
	return &a.blocks[len(a.blocks)-1]
}

// position is the global byte offset across the whole chain: every block
// before the tail counts with its full capacity, the tail with its cursor.
func (a *Arena) position() int64 {
	var pos int64
	for i := 0; i < len(a.blocks)-1; i++ {
		pos += int64(a.blocks[i].cap())
	}
	return pos + int64(a.tail().off)
}
