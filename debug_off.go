//go:build !uintn_debug
// +build !uintn_debug

package uintn

// debugUint enables internal invariant checks. Build with '-tags uintn_debug'
// to turn them on.
const debugUint = false

func checkNoOverlap(a, b []uint64) {}
