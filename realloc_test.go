package marena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameBase(a, b []byte) bool {
	return uintptr(unsafe.Pointer(&a[0])) == uintptr(unsafe.Pointer(&b[0]))
}

func TestReallocZeroSize(t *testing.T) {
	a, err := New(256)
	require.NoError(t, err)
	defer a.Close()

	b := a.Alloc(16)
	pos := a.Position()
	assert.Nil(t, a.Realloc(b, 0))
	// release is unsupported, the bytes stay committed
	assert.Equal(t, pos, a.Position())
}

func TestReallocNilIsAlloc(t *testing.T) {
	a, err := New(256)
	require.NoError(t, err)
	defer a.Close()

	b := a.Realloc(nil, 24)
	require.Len(t, b, 24)
	assert.Equal(t, int64(24), a.Position())
}

func TestReallocInPlaceGrow(t *testing.T) {
	a, err := New(256)
	require.NoError(t, err)
	defer a.Close()

	b := a.Alloc(16)
	for i := range b {
		b[i] = byte(i)
	}
	nb := a.Realloc(b, 32)
	require.Len(t, nb, 32)
	assert.True(t, sameBase(b, nb))
	assert.Equal(t, int64(32), a.Position())
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(i), nb[i])
	}
}

func TestReallocInPlaceShrink(t *testing.T) {
	a, err := New(256)
	require.NoError(t, err)
	defer a.Close()

	b := a.Alloc(32)
	nb := a.Realloc(b, 8)
	require.Len(t, nb, 8)
	assert.True(t, sameBase(b, nb))
	assert.Equal(t, int64(8), a.Position())
}

func TestReallocCopyWhenNotLast(t *testing.T) {
	a, err := New(256)
	require.NoError(t, err)
	defer a.Close()

	b1 := a.Alloc(16)
	for i := range b1 {
		b1[i] = byte(i + 1)
	}
	b2 := a.Alloc(16)
	_ = b2

	nb := a.Realloc(b1, 64)
	require.Len(t, nb, 64)
	assert.False(t, sameBase(b1, nb))
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(i+1), nb[i])
	}
	// old region is dead weight but still committed
	assert.Equal(t, int64(16+16+64), a.Position())
}

func TestReallocCopyWhenNoRoom(t *testing.T) {
	opt := &Options{InitialSize: 64, BlockSize: 64}
	a, err := NewWithOptions(opt)
	require.NoError(t, err)
	defer a.Close()

	b := a.Alloc(48)
	for i := range b {
		b[i] = 0x5A
	}
	nb := a.Realloc(b, 128)
	require.Len(t, nb, 128)
	assert.False(t, sameBase(b, nb))
	assert.Equal(t, 2, a.NumBlocks())
	for i := 0; i < 48; i++ {
		assert.Equal(t, byte(0x5A), nb[i])
	}
}

func TestReallocCopiesAfterRewind(t *testing.T) {
	a, err := New(256)
	require.NoError(t, err)
	defer a.Close()

	b := a.Alloc(16)
	for i := range b {
		b[i] = byte(i)
	}
	a.PushMarker()
	a.Alloc(32)
	a.PopMarker()

	// cursor is back at b's end, but the rewind revoked in-place
	// eligibility; resizing must copy
	nb := a.Realloc(b, 32)
	require.Len(t, nb, 32)
	assert.False(t, sameBase(b, nb))
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(i), nb[i])
	}
}

func TestReallocShrinkCopyKeepsPrefix(t *testing.T) {
	a, err := New(256)
	require.NoError(t, err)
	defer a.Close()

	b1 := a.Alloc(32)
	for i := range b1 {
		b1[i] = byte(i)
	}
	a.Alloc(8) // b1 is no longer last, shrink must copy
	nb := a.Realloc(b1, 16)
	require.Len(t, nb, 16)
	assert.False(t, sameBase(b1, nb))
	for i := 0; i < 16; i++ {
		assert.Equal(t, byte(i), nb[i])
	}
}
