package uintn

import (
	"math/bits"
)

// All arithmetic wraps modulo 2^Width(). Binary operations panic if the
// operands have different widths.

func (u Uint) Add(n Uint) Uint {
	mustSameWidth(u, n)
	out := newUint(u.bits)
	var carry uint64
	for i := range out.limbs {
		out.limbs[i], carry = bits.Add64(u.limbs[i], n.limbs[i], carry)
	}
	maskLimbs(out.bits, out.limbs)
	return out
}

func (u Uint) Sub(n Uint) Uint {
	mustSameWidth(u, n)
	out := newUint(u.bits)
	var borrow uint64
	for i := range out.limbs {
		out.limbs[i], borrow = bits.Sub64(u.limbs[i], n.limbs[i], borrow)
	}
	maskLimbs(out.bits, out.limbs)
	return out
}

// Neg returns the two's complement of u, i.e. 2^Width() - u.
func (u Uint) Neg() Uint {
	return newUint(u.bits).Sub(u)
}

// Mul returns the low Width() bits of u * n.
func (u Uint) Mul(n Uint) Uint {
	mustSameWidth(u, n)
	out := newUint(u.bits)
	ln := len(out.limbs)
	for i := 0; i < ln; i++ {
		if u.limbs[i] == 0 {
			continue
		}
		var carry uint64
		for j := 0; i+j < ln; j++ {
			hi, lo := bits.Mul64(u.limbs[i], n.limbs[j])
			var c uint64
			lo, c = bits.Add64(lo, out.limbs[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			out.limbs[i+j] = lo
			carry = hi
		}
	}
	maskLimbs(out.bits, out.limbs)
	return out
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs with ErrDivisionByZero.
//
// Both operands must have the same width.
func (u Uint) QuoRem(by Uint) (q, r Uint) {
	mustSameWidth(u, by)
	q, r = u.clone(), by.clone()
	DivRem(q.limbs, r.limbs)
	return q, r
}

// Quo returns the quotient u/by for by != 0. See QuoRem.
func (u Uint) Quo(by Uint) Uint {
	q, _ := u.QuoRem(by)
	return q
}

// Rem returns the remainder u%by for by != 0. See QuoRem.
func (u Uint) Rem(by Uint) Uint {
	_, r := u.QuoRem(by)
	return r
}

// Lsh returns u << n, discarding bits shifted past the width.
func (u Uint) Lsh(n uint) Uint {
	out, _ := u.OverflowingLsh(n)
	return out
}

// OverflowingLsh returns u << n and whether any set bits were shifted out.
func (u Uint) OverflowingLsh(n uint) (out Uint, overflow bool) {
	if n >= u.bits {
		return newUint(u.bits), !u.IsZero()
	}
	overflow = u.BitLen()+n > u.bits

	out = newUint(u.bits)
	ln := len(u.limbs)
	limbShift, bitShift := int(n/limbBits), n%limbBits
	for i := ln - 1; i >= limbShift; i-- {
		v := u.limbs[i-limbShift] << bitShift
		if bitShift > 0 && i-limbShift-1 >= 0 {
			v |= u.limbs[i-limbShift-1] >> (limbBits - bitShift)
		}
		out.limbs[i] = v
	}
	maskLimbs(out.bits, out.limbs)
	return out, overflow
}

// Rsh returns u >> n.
func (u Uint) Rsh(n uint) Uint {
	out := newUint(u.bits)
	if n >= u.bits {
		return out
	}
	ln := len(u.limbs)
	limbShift, bitShift := int(n/limbBits), n%limbBits
	for i := 0; i+limbShift < ln; i++ {
		v := u.limbs[i+limbShift] >> bitShift
		if bitShift > 0 && i+limbShift+1 < ln {
			v |= u.limbs[i+limbShift+1] << (limbBits - bitShift)
		}
		out.limbs[i] = v
	}
	return out
}

func (u Uint) And(n Uint) Uint {
	mustSameWidth(u, n)
	out := newUint(u.bits)
	for i := range out.limbs {
		out.limbs[i] = u.limbs[i] & n.limbs[i]
	}
	return out
}

func (u Uint) AndNot(n Uint) Uint {
	mustSameWidth(u, n)
	out := newUint(u.bits)
	for i := range out.limbs {
		out.limbs[i] = u.limbs[i] &^ n.limbs[i]
	}
	return out
}

func (u Uint) Or(n Uint) Uint {
	mustSameWidth(u, n)
	out := newUint(u.bits)
	for i := range out.limbs {
		out.limbs[i] = u.limbs[i] | n.limbs[i]
	}
	return out
}

func (u Uint) Xor(n Uint) Uint {
	mustSameWidth(u, n)
	out := newUint(u.bits)
	for i := range out.limbs {
		out.limbs[i] = u.limbs[i] ^ n.limbs[i]
	}
	return out
}

func (u Uint) Not() Uint {
	out := newUint(u.bits)
	for i := range out.limbs {
		out.limbs[i] = ^u.limbs[i]
	}
	maskLimbs(out.bits, out.limbs)
	return out
}
