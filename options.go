package marena

const (
	// DefaultBlockSize is the root block size when none is given, and the
	// floor for every block appended during growth.
	DefaultBlockSize = 1 << 20

	// InitialMarkerCap is the starting capacity of the marker stack.
	InitialMarkerCap = 16

	// Alignment is the boundary every allocation is rounded up to.
	Alignment = 8

	maxBlockSize = 1 << 30
)

// Options controls arena construction. Zero or negative sizes fall back to
// the defaults above.
type Options struct {
	InitialSize int64 // capacity of the root block
	BlockSize   int64 // growth floor for appended blocks
	MarkerCap   int   // initial marker stack capacity
	MmapBacked  bool  // back blocks with anonymous mappings instead of the heap
}

func DefaultOptions() *Options {
	return &Options{
		InitialSize: DefaultBlockSize,
		BlockSize:   DefaultBlockSize,
		MarkerCap:   InitialMarkerCap,
	}
}
