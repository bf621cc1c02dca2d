//go:build linux

package mmap

import (
	"golang.org/x/sys/unix"
)

// 匿名映射，fd为-1，MAP_PRIVATE表示这块内存区域进程私有
func alloc(size int) ([]byte, error) {
	mtype := unix.PROT_READ | unix.PROT_WRITE
	return unix.Mmap(-1, 0, size, mtype, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
}

func free(buffer []byte) error {
	// 取消这块内存映射
	return unix.Munmap(buffer)
}

func recycle(buffer []byte) error {
	// 页面内容作废，下次访问时重新分配零页
	return unix.Madvise(buffer, unix.MADV_DONTNEED)
}
