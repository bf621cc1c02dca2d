//go:build linux || darwin

package mmap

// 向操作系统申请一块匿名私有映射，不关联任何文件
func Alloc(size int) ([]byte, error) {
	return alloc(size)
}

// 取消一块内存区域的映射，物理页立即归还给操作系统
func Free(buffer []byte) error {
	return free(buffer)
}

// 提示操作系统这块区域的内容不再需要，物理页可回收但映射保留
func Recycle(buffer []byte) error {
	return recycle(buffer)
}
