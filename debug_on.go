//go:build uintn_debug
// +build uintn_debug

package uintn

import (
	"unsafe"
)

const debugUint = true

// checkNoOverlap panics if a and b share any backing memory. DivRem reads and
// writes both buffers interleaved, so aliasing corrupts the result.
func checkNoOverlap(a, b []uint64) {
	if len(a) == 0 || len(b) == 0 {
		return
	}
	const sz = unsafe.Sizeof(uint64(0))
	aStart := uintptr(unsafe.Pointer(&a[0]))
	aEnd := aStart + uintptr(len(a))*sz
	bStart := uintptr(unsafe.Pointer(&b[0]))
	bEnd := bStart + uintptr(len(b))*sz
	if aStart < bEnd && bStart < aEnd {
		panic("uintn: numerator and divisor buffers overlap")
	}
}
