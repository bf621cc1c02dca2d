package marena

// Stats is a point-in-time snapshot of arena accounting.
type Stats struct {
	NumBlocks   int     // blocks currently chained
	Capacity    int64   // total bytes across all blocks
	Position    int64   // global committed-byte offset
	Markers     int     // markers on the stack
	Utilization float64 // Position / Capacity, 0 when empty
}

// NumBlocks returns the number of blocks in the chain, 0 after Close.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// Capacity returns the total capacity in bytes across the chain.
func (a *Arena) Capacity() int64 {
	var sum int64
	for i := range a.blocks {
		sum += int64(a.blocks[i].cap())
	}
	return sum
}

// Position returns the arena's global position: bytes committed across the
// whole chain, counting each non-tail block at full capacity.
func (a *Arena) Position() int64 {
	if a.blocks == nil {
		return 0
	}
	return a.position()
}

func (a *Arena) Stats() Stats {
	if a.blocks == nil {
		return Stats{}
	}
	s := Stats{
		NumBlocks: len(a.blocks),
		Capacity:  a.Capacity(),
		Position:  a.position(),
		Markers:   len(a.markers),
	}
	if s.Capacity > 0 {
		s.Utilization = float64(s.Position) / float64(s.Capacity)
	}
	return s
}
