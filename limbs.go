package uintn

import (
	"math/bits"
)

// LimbCount returns the number of 64-bit limbs needed to hold a value of the
// given bit width.
func LimbCount(bits uint) int {
	return int((bits + limbBits - 1) / limbBits)
}

// Mask returns the mask for the most significant limb of a value of the given
// bit width. Widths that are a multiple of 64 use the whole top limb.
func Mask(bits uint) uint64 {
	if bits == 0 {
		return 0
	}
	rem := bits % limbBits
	if rem == 0 {
		return maxUint64
	}
	return 1<<rem - 1
}

// maskLimbs clears every bit at or above 'bits' in place. It is idempotent.
// limbs must already be exactly LimbCount(bits) long.
func maskLimbs(bits uint, limbs []uint64) {
	if len(limbs) == 0 {
		return
	}
	limbs[len(limbs)-1] &= Mask(bits)
}

// isMasked reports whether limbs is in canonical form for the width.
func isMasked(bits uint, limbs []uint64) bool {
	if len(limbs) == 0 {
		return true
	}
	return limbs[len(limbs)-1]&^Mask(bits) == 0
}

// limbsBitLen returns the index of the highest set bit plus one, or 0.
func limbsBitLen(limbs []uint64) uint {
	for i := len(limbs) - 1; i >= 0; i-- {
		if limbs[i] != 0 {
			return uint(i)*limbBits + uint(bits.Len64(limbs[i]))
		}
	}
	return 0
}

// limbsLen returns the number of limbs once leading (most significant) zero
// limbs are trimmed.
func limbsLen(limbs []uint64) int {
	i := len(limbs)
	for i > 0 && limbs[i-1] == 0 {
		i--
	}
	return i
}

func limbsIsZero(limbs []uint64) bool {
	for _, l := range limbs {
		if l != 0 {
			return false
		}
	}
	return true
}

// limbsCmp compares two limb sequences of equal length.
func limbsCmp(a, b []uint64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] > b[i] {
			return 1
		} else if a[i] < b[i] {
			return -1
		}
	}
	return 0
}
