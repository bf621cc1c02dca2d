//go:build darwin

package mmap

import (
	"golang.org/x/sys/unix"
)

func alloc(size int) ([]byte, error) {
	mtype := unix.PROT_READ | unix.PROT_WRITE
	return unix.Mmap(-1, 0, size, mtype, unix.MAP_PRIVATE|unix.MAP_ANON)
}

func free(buffer []byte) error {
	return unix.Munmap(buffer)
}

func recycle(buffer []byte) error {
	// darwin上MADV_FREE允许系统在内存紧张时回收页面
	return unix.Madvise(buffer, unix.MADV_FREE)
}
