package uintn

import (
	"fmt"
	"math/bits"
)

// DivRem divides numerator by divisor in place. Both are little-endian limb
// sequences owned by the caller, and they must not overlap.
//
// On return, numerator holds the quotient and divisor holds the remainder. The
// lengths of both slices are unchanged; limbs that are not needed are zeroed.
// The numerator may be any length, including shorter than the divisor.
//
// Divisors with a single significant limb use schoolbook division, anything
// longer uses Knuth's Algorithm D (TAOCP Vol. 2, 4.3.1).
//
// DivRem panics with ErrDivisionByZero if divisor is zero. Neither buffer is
// touched in that case.
func DivRem(numerator, divisor []uint64) {
	n := limbsLen(divisor)
	if n == 0 {
		panic(ErrDivisionByZero)
	}
	checkNoOverlap(numerator, divisor)

	// Any limbs past n are already zero, which is where the unused part of
	// the remainder needs to end up anyway.
	divisor = divisor[:n]

	if n == 1 {
		divisor[0] = divremNby1(numerator, divisor[0])
		return
	}

	if len(numerator) < n {
		// The divisor is longer than the numerator can ever be, so it's 100%
		// remainder.
		copy(divisor, numerator)
		clearLimbs(divisor[len(numerator):])
		clearLimbs(numerator)
		return
	}

	// Algorithm D needs one extra zero limb at the top of the numerator to
	// absorb the normalization shift:
	buf := make([]uint64, len(numerator)+1)
	copy(buf, numerator)

	divremNbyM(buf, divisor)

	copy(divisor, buf[:n])
	quo := buf[n:]
	copy(numerator, quo)
	clearLimbs(numerator[len(quo):])
}

// adc computes a + b + carry, returning the sum and the new carry.
func adc(a, b, carry uint64) (sum, carryOut uint64) {
	return bits.Add64(a, b, carry)
}

// msb computes a - (b*c + borrow), returning the difference and the new
// borrow. The borrow is a full limb, not a single bit.
//
// The subtraction is done on the 128-bit value and allowed to wrap; the
// negated high limb of the wrapped result is the amount to borrow from the
// next limb up.
func msb(a, b, c, borrow uint64) (diff, borrowOut uint64) {
	phi, plo := bits.Mul64(b, c)
	var carry uint64
	plo, carry = bits.Add64(plo, borrow, 0)
	phi += carry // cannot overflow: (2^64-1)^2 + 2^64-1 < 2^128

	var br uint64
	diff, br = bits.Sub64(a, plo, 0)
	rhi := 0 - phi - br
	return diff, 0 - rhi
}

// divrem2by1 computes <hi, lo> / d. d must be greater than hi so that the
// quotient fits in a single limb.
func divrem2by1(lo, hi, d uint64) (q, r uint64) {
	if debugUint && d <= hi {
		panic(fmt.Errorf("uintn: divrem2by1 divisor %#x <= hi %#x", d, hi))
	}
	return bits.Div64(hi, lo, d)
}

// divremNby1 divides numerator by a single limb in place, leaving the quotient
// in numerator and returning the remainder.
func divremNby1(numerator []uint64, divisor uint64) (rem uint64) {
	if debugUint && divisor == 0 {
		panic(ErrDivisionByZero)
	}

	// rem is the high half of a 128-bit accumulator; it is always < divisor,
	// so each step's quotient fits in a limb.
	for i := len(numerator) - 1; i >= 0; i-- {
		numerator[i], rem = bits.Div64(rem, numerator[i], divisor)
	}
	return rem
}

// div3by2 estimates a quotient limb:
//
//	    |  n2 n1 n0  |
//	q = |  --------  |
//	    |_    d1 d0 _|
//
// The top bit of d1 must be set, and <n2, n1> must not be greater than
// <d1, d0>. When they are equal the quotient does not fit and MaxUint64 is
// returned; Algorithm D only gets there when the limbs below the window make
// MaxUint64 the right digit. Otherwise the result is exact when the remaining
// divisor limbs are zero, and at most one too large when they are not.
func div3by2(n [3]uint64, d [2]uint64) uint64 {
	if debugUint {
		if d[1]>>63 != 1 {
			panic(fmt.Errorf("uintn: div3by2 divisor not normalized: %#x", d[1]))
		}
		if lt128(d[1], d[0], n[2], n[1]) {
			panic(fmt.Errorf("uintn: div3by2 quotient does not fit a limb"))
		}
	}

	if n[2] == d[1] {
		// n2 == d1 means n1 <= d0. A 2-by-1 division would overflow here, so
		// subtract 2^64 times the divisor instead. What is left is minus
		// <d0 - n1, -n0>, and adding the divisor back once or twice brings it
		// above zero, so the digit is MaxUint64 or one less. If <d0 - n1, -n0>
		// is itself negative (n1 == d0 and n0 > 0) the true digit is past
		// MaxUint64 already.
		nrlo, b := bits.Sub64(0, n[0], 0)
		nrhi, b := bits.Sub64(d[0], n[1], b)
		if b != 0 {
			return maxUint64
		}
		if lt128(d[1], d[0], nrhi, nrlo) {
			return maxUint64 - 1
		}
		return maxUint64
	}

	q, r := divrem2by1(n[1], n[2], d[1])

	phi, plo := bits.Mul64(q, d[0])
	if lt128(r, n[0], phi, plo) {
		q--
		r += d[1]
		overflow := r < d[1]
		if !overflow {
			phi, plo = bits.Mul64(q, d[0])
			if lt128(r, n[0], phi, plo) {
				q--
			}
		}
	}
	return q
}

// divremNbyM is Knuth's Algorithm D. The numerator is replaced with the
// remainder in its low len(divisor) limbs and the quotient in the rest.
//
// The divisor must have at least two limbs with a nonzero top limb, and the
// numerator must be longer than the divisor with a zero top limb. The divisor
// is left normalized (shifted left) on return.
func divremNbyM(numerator, divisor []uint64) {
	n := len(divisor)
	if debugUint {
		if n < 2 {
			panic(fmt.Errorf("uintn: divremNbyM divisor has %d limbs", n))
		}
		if len(numerator) <= n {
			panic(fmt.Errorf("uintn: divremNbyM numerator too short (%d <= %d)", len(numerator), n))
		}
		if divisor[n-1] == 0 {
			panic(fmt.Errorf("uintn: divremNbyM divisor top limb is zero"))
		}
		if numerator[len(numerator)-1] != 0 {
			panic(fmt.Errorf("uintn: divremNbyM numerator guard limb is not zero"))
		}
	}
	m := len(numerator) - n - 1

	// D1. Normalize so the top bit of the divisor is set.
	shift := uint(bits.LeadingZeros64(divisor[n-1]))
	if shift > 0 {
		numerator[n+m] = numerator[n+m-1] >> (limbBits - shift)
		for i := n + m - 1; i > 0; i-- {
			numerator[i] = numerator[i]<<shift | numerator[i-1]>>(limbBits-shift)
		}
		numerator[0] <<= shift
		for i := n - 1; i > 0; i-- {
			divisor[i] = divisor[i]<<shift | divisor[i-1]>>(limbBits-shift)
		}
		divisor[0] <<= shift
	}

	// D2. Loop over the quotient digits, most significant first.
	for j := m; j >= 0; j-- {
		// D3. Estimate the digit from the top of the window.
		qhat := div3by2(
			[3]uint64{numerator[j+n-2], numerator[j+n-1], numerator[j+n]},
			[2]uint64{divisor[n-2], divisor[n-1]},
		)

		// D4. Multiply and subtract.
		var borrow uint64
		for i := 0; i < n; i++ {
			numerator[j+i], borrow = msb(numerator[j+i], qhat, divisor[i], borrow)
		}

		// D5. Test for a negative remainder.
		if numerator[j+n] < borrow {
			// D6. Add back. This is rare.
			var carry uint64
			for i := 0; i < n; i++ {
				numerator[j+i], carry = adc(numerator[j+i], divisor[i], carry)
			}
			qhat--

			// The top of the window is about to be overwritten by the digit,
			// but it must have come back to zero.
			if debugUint && numerator[j+n]-borrow+carry != 0 {
				panic(fmt.Errorf("uintn: divremNbyM add-back left nonzero window at %d", j))
			}
		} else if debugUint && numerator[j+n]-borrow != 0 {
			panic(fmt.Errorf("uintn: divremNbyM subtraction left nonzero window at %d", j))
		}

		// D7. The top limb of the window is free now; store the digit there.
		numerator[j+n] = qhat
	}

	// D8. Unnormalize. Only the remainder is shifted back, the quotient digits
	// are already correct.
	if shift > 0 {
		for i := 0; i < n-1; i++ {
			numerator[i] = numerator[i]>>shift | numerator[i+1]<<(limbBits-shift)
		}
		numerator[n-1] >>= shift
	}
}

// lt128 reports whether <ahi, alo> < <bhi, blo>.
func lt128(ahi, alo, bhi, blo uint64) bool {
	return ahi < bhi || (ahi == bhi && alo < blo)
}

func clearLimbs(limbs []uint64) {
	for i := range limbs {
		limbs[i] = 0
	}
}
