package marena

import "marena/utils"

// PushMarker records the current global position on the marker stack.
// Checkpointing is best-effort by contract: a push that cannot obtain
// marker storage is dropped rather than surfaced, since a missing
// checkpoint only forfeits a future rewind point and never corrupts the
// arena. In Go the append below can only fail by runtime OOM, so in
// practice every push lands.
func (a *Arena) PushMarker() {
	a.assertOpen()
	a.markers = append(a.markers, a.position())
}

// PopMarker rewinds the arena to the most recently pushed marker,
// invalidating every allocation made since that push and freeing any block
// that lies entirely past it. Popping with no markers is a no-op. Markers
// obey strict stack discipline; there is no way to address a non-top
// marker.
func (a *Arena) PopMarker() {
	a.assertOpen()
	if len(a.markers) == 0 {
		return
	}
	g := a.markers[len(a.markers)-1]
	a.markers = a.markers[:len(a.markers)-1]
	a.rewind(g)
}

// Reset discards every marker and every allocation, freeing all non-root
// blocks. The root block keeps its capacity, so the arena is ready for
// reuse at position zero.
func (a *Arena) Reset() {
	a.assertOpen()
	a.markers = a.markers[:0]
	a.releaseFrom(1)
	root := &a.blocks[0]
	root.off, root.last = 0, 0
	_ = utils.Err(a.backing.recycle(root.buf))
}

// rewind truncates the chain to global position g. The block containing g
// becomes the tail with its cursor at g's in-block offset; later blocks are
// released outright.
func (a *Arena) rewind(g int64) {
	var cum int64
	for i := range a.blocks {
		b := &a.blocks[i]
		if g <= cum+int64(b.cap()) {
			b.off = int(g - cum)
			// nothing allocated after the cut may resize in place
			b.last = b.off
			a.releaseFrom(i + 1)
			return
		}
		cum += int64(b.cap())
	}
	// markers never exceed the chain's extent at push time, and rewinds
	// only shrink the chain toward them
	utils.AssertTrue(false)
}
