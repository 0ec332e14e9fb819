package uintn

import (
	"fmt"
	"math/bits"
)

// Uint is an unsigned integer of exactly Width() bits, stored as little-endian
// 64-bit limbs. Every bit at or above the width is always zero.
//
// The zero value is the only value of a zero-width Uint. Use Zero(bits) to
// get the zero of any other width.
type Uint struct {
	bits  uint
	limbs []uint64
}

func newUint(bits uint) Uint {
	return Uint{bits: bits, limbs: make([]uint64, LimbCount(bits))}
}

// Zero returns the zero value for a Uint of the given width.
func Zero(bits uint) Uint { return newUint(bits) }

// Max returns 2^bits - 1.
func Max(bits uint) Uint {
	u := newUint(bits)
	for i := range u.limbs {
		u.limbs[i] = maxUint64
	}
	maskLimbs(bits, u.limbs)
	return u
}

// FromLimbs creates a Uint from exactly LimbCount(bits) little-endian limbs.
// The caller must have already masked the top limb; this is only checked
// when built with the uintn_debug tag, otherwise the excess bits are cleared.
//
// The limbs are copied; the caller keeps ownership of the slice.
func FromLimbs(bits uint, limbs []uint64) Uint {
	if len(limbs) != LimbCount(bits) {
		panic(fmt.Errorf("uintn: expected %d limbs for width %d, found %d", LimbCount(bits), bits, len(limbs)))
	}
	if debugUint && !isMasked(bits, limbs) {
		panic(fmt.Errorf("uintn: limbs are not masked to width %d", bits))
	}
	u := newUint(bits)
	copy(u.limbs, limbs)
	maskLimbs(bits, u.limbs)
	return u
}

// FromLimbsTruncating creates a Uint from a little-endian limb sequence of any
// length. Limbs past LimbCount(bits) and bits above the width are discarded;
// overflow reports whether any of them were set.
func FromLimbsTruncating(bits uint, limbs []uint64) (out Uint, overflow bool) {
	out = newUint(bits)
	n := copy(out.limbs, limbs)
	overflow = !limbsIsZero(limbs[n:]) || !isMasked(bits, out.limbs)
	maskLimbs(bits, out.limbs)
	return out, overflow
}

// Width returns the number of bits in u's type (not the number of significant
// bits, see BitLen).
func (u Uint) Width() uint { return u.bits }

// Limbs returns a copy of the little-endian limbs of u. See FromLimbs for the
// counterpart.
func (u Uint) Limbs() []uint64 {
	out := make([]uint64, len(u.limbs))
	copy(out, u.limbs)
	return out
}

// Limb returns the limb at index i, or 0 if i is past the top limb.
func (u Uint) Limb(i int) uint64 {
	if i < len(u.limbs) {
		return u.limbs[i]
	}
	return 0
}

func (u Uint) IsZero() bool { return limbsIsZero(u.limbs) }

// BitLen returns the index of the highest set bit plus one, or 0 if u is zero.
func (u Uint) BitLen() uint { return limbsBitLen(u.limbs) }

// Bit returns whether bit i is set. It panics if i is outside the width.
func (u Uint) Bit(i uint) bool {
	if i >= u.bits {
		panic(fmt.Errorf("uintn: bit index %d out of range for width %d", i, u.bits))
	}
	return (u.limbs[i/limbBits]>>(i%limbBits))&1 == 1
}

// SetBit returns a copy of u with bit i set to v. It panics if i is outside
// the width.
func (u Uint) SetBit(i uint, v bool) Uint {
	if i >= u.bits {
		panic(fmt.Errorf("uintn: bit index %d out of range for width %d", i, u.bits))
	}
	out := u.clone()
	if v {
		out.limbs[i/limbBits] |= 1 << (i % limbBits)
	} else {
		out.limbs[i/limbBits] &^= 1 << (i % limbBits)
	}
	return out
}

func (u Uint) LeadingZeros() uint {
	return u.bits - u.BitLen()
}

func (u Uint) TrailingZeros() uint {
	for i, l := range u.limbs {
		if l != 0 {
			return uint(i)*limbBits + uint(bits.TrailingZeros64(l))
		}
	}
	return u.bits
}

// Equal reports whether u and n have the same width and value.
func (u Uint) Equal(n Uint) bool {
	if u.bits != n.bits {
		return false
	}
	for i := range u.limbs {
		if u.limbs[i] != n.limbs[i] {
			return false
		}
	}
	return true
}

// Cmp compares u and n. Both must have the same width.
func (u Uint) Cmp(n Uint) int {
	mustSameWidth(u, n)
	return limbsCmp(u.limbs, n.limbs)
}

func (u Uint) GreaterThan(n Uint) bool      { return u.Cmp(n) > 0 }
func (u Uint) GreaterOrEqualTo(n Uint) bool { return u.Cmp(n) >= 0 }
func (u Uint) LessThan(n Uint) bool         { return u.Cmp(n) < 0 }
func (u Uint) LessOrEqualTo(n Uint) bool    { return u.Cmp(n) <= 0 }

// mostSignificantBits returns the top 64 significant bits of u and the number
// of bits below them, such that u ~= msb << exp.
func (u Uint) mostSignificantBits() (msb uint64, exp uint) {
	bl := u.BitLen()
	if bl <= limbBits {
		return u.Limb(0), 0
	}
	exp = bl - limbBits
	idx, sh := int(exp/limbBits), exp%limbBits
	msb = u.limbs[idx] >> sh
	if sh > 0 {
		msb |= u.Limb(idx+1) << (limbBits - sh)
	}
	return msb, exp
}

func (u Uint) clone() Uint {
	out := Uint{bits: u.bits, limbs: make([]uint64, len(u.limbs))}
	copy(out.limbs, u.limbs)
	return out
}

func mustSameWidth(a, b Uint) {
	if a.bits != b.bits {
		panic(fmt.Errorf("uintn: width mismatch %d != %d", a.bits, b.bits))
	}
}
