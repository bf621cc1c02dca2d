package utils

import (
	"log"

	"github.com/pkg/errors"
)

// 向上对齐到align的倍数，align必须是2的幂
func AlignUp(n int, align int) int {
	return (n + align - 1) &^ (align - 1)
}

func IsAligned(n int, align int) bool {
	return n&(align-1) == 0
}

// false中断
func AssertTrue(b bool) {
	// 函数调用栈的错误信息
	if !b {
		log.Fatalf("%+v", errors.Errorf("Assert failed"))
	}
}
