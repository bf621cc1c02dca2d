package utils

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
)

var (
	ErrArenaClosed = errors.New("arena used after close")
	ErrBlockAlloc  = errors.New("block allocation failed")
	ErrIntOverflow = errors.New("integer overflow")
	ErrMunmap      = errors.New("munmap failed")
)

// err非空panic
func Panic(err error) {
	if err != nil {
		panic(err)
	}
}

// condition true中断err
func CondPanic(condition bool, err error) {
	if condition {
		Panic(err)
	}
}

func Err(err error) error {
	if err != nil {
		fmt.Printf("%s %s\n", location(2, true), err)
	}
	return err
}

func location(deep int, fullPath bool) string {
	_, file, line, ok := runtime.Caller(deep)
	if !ok {
		file = "???"
		line = 0
	}

	file = filepath.Base(file)

	return file + ":" + strconv.Itoa(line)
}
