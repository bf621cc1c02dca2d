package marena

import (
	"marena/mmap"
	"marena/utils"
)

// backing acquires and releases the memory behind blocks. recycle hints
// that a still-mapped region's contents are no longer needed.
type backing interface {
	acquire(size int) ([]byte, error)
	release(buf []byte) error
	recycle(buf []byte) error
}

func pickBacking(opt *Options) backing {
	if opt.MmapBacked {
		return mmapBacking{}
	}
	return heapBacking{}
}

// heapBacking allocates blocks on the Go heap. make cannot report failure,
// so with this backing the only allocation failure domain is the runtime
// itself.
type heapBacking struct{}

func (heapBacking) acquire(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (heapBacking) release(buf []byte) error {
	return nil
}

func (heapBacking) recycle(buf []byte) error {
	return nil
}

// mmapBacking maps blocks as anonymous private pages, so releasing a block
// on rewind returns its memory to the OS immediately.
type mmapBacking struct{}

func (mmapBacking) acquire(size int) ([]byte, error) {
	return mmap.Alloc(size)
}

func (mmapBacking) release(buf []byte) error {
	return mmap.Free(buf)
}

func (mmapBacking) recycle(buf []byte) error {
	return mmap.Recycle(buf)
}

// grow appends a new tail block able to hold need bytes. Sizing doubles the
// previous tail with a floor at both the configured block size and the
// request itself, so one huge request is never under-served and small ones
// amortize. On failure the chain is left unmodified.
func (a *Arena) grow(need int) error {
	size := int64(a.tail().cap()) * 2
	if size < a.opt.BlockSize {
		size = a.opt.BlockSize
	}
	if size > maxBlockSize {
		size = maxBlockSize
	}
	if size < int64(need) {
		size = int64(need)
	}
	buf, err := a.backing.acquire(int(size))
	if err != nil {
		return err
	}
	a.blocks = append(a.blocks, block{buf: buf})
	return nil
}

// releaseFrom frees every block at index i and beyond and truncates the
// chain. Release errors are reported but do not stop the teardown.
func (a *Arena) releaseFrom(i int) {
	for j := i; j < len(a.blocks); j++ {
		_ = utils.Err(a.backing.release(a.blocks[j].buf))
	}
	a.blocks = a.blocks[:i]
}
