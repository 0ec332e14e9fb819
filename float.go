package uintn

import (
	"math"

	"golang.org/x/exp/constraints"
)

// FromFloat converts a float32 or float64 into a Uint of the given width,
// rounding to the nearest integer with ties going away from zero (123.5
// becomes 124).
//
// NaN fails with NotANumber. Negative values fail with ValueNegative, carrying
// the two's complement of the rounded magnitude. Values at or above 2^bits
// fail with ValueTooLarge, carrying the value modulo 2^bits.
func FromFloat[T constraints.Float](bits uint, v T) (Uint, error) {
	return fromFloat64(bits, float64(v))
}

func fromFloat64(bits uint, f float64) (Uint, error) {
	if math.IsNaN(f) {
		return notANumber(bits)
	}

	if f < 0 {
		mag, _ := fromFloat64(bits, -f)
		return negative(bits, mag.Neg())
	}

	if f >= math.Ldexp(1, int(bits)) {
		wrapped, _ := fromFloat64(bits, modPow2(f, bits))
		return tooLarge(bits, wrapped)
	}

	if f < float64Half {
		return newUint(bits), nil
	}

	// From 2^52 up every float64 is an integer, and adding a half would tie
	// and round to even instead.
	if f < 1<<float64MantBits {
		f += float64Half
	}

	// Work on the IEEE-754 bits directly so large magnitudes keep every bit
	// of the mantissa. f is >= 1 from here, so it is normal with a
	// non-negative exponent.
	fb := math.Float64bits(f)
	exp := uint((fb>>float64MantBits)&float64ExpMask) - float64Bias
	mant := fb&float64FracMask | 1<<float64MantBits

	if exp > bits+float64MantBits {
		// Every mantissa bit lands above the width.
		return tooLarge(bits, newUint(bits))
	}
	if exp <= float64MantBits {
		return fromUint64(bits, mant>>(float64MantBits-exp))
	}

	// Shift in a Uint one limb wider than the target so the mantissa always
	// fits before the shift; bits lost either way are an overflow.
	wide, _ := fromUint64(bits+limbBits, mant)
	wide, lost := wide.OverflowingLsh(exp - float64MantBits)
	out, truncated := FromLimbsTruncating(bits, wide.limbs)
	if lost || truncated {
		return tooLarge(bits, out)
	}
	return out, nil
}

// modPow2 returns x mod 2^bits for a finite x >= 2^bits. The result is exact:
// with x = mant * 2^shift, the remainder is the low (bits - shift) bits of
// the mantissa scaled back up by 2^shift.
//
// Infinity has no remainder, so it returns NaN.
func modPow2(x float64, bits uint) float64 {
	if math.IsInf(x, 0) {
		return math.NaN()
	}

	fb := math.Float64bits(x)
	exp := int((fb>>float64MantBits)&float64ExpMask) - float64Bias
	mant := fb&float64FracMask | 1<<float64MantBits
	shift := exp - float64MantBits

	if shift >= int(bits) {
		return 0
	}
	keep := uint(int(bits) - shift) // exp >= bits, so keep <= 52
	return math.Ldexp(float64(mant&(1<<keep-1)), shift)
}

// Float64 returns the nearest float64 to u, give or take the bits below the
// top 64. Values too large for a float64 become +Inf.
func (u Uint) Float64() float64 {
	msb, exp := u.mostSignificantBits()
	return math.Ldexp(float64(msb), int(exp))
}

// Float32 is Float64 for float32.
func (u Uint) Float32() float32 {
	msb, exp := u.mostSignificantBits()
	f := math.Ldexp(float64(float32(msb)), int(exp))
	if f > math.MaxFloat32 {
		return float32(math.Inf(1))
	}
	return float32(f)
}

func SaturatingFromFloat[T constraints.Float](bits uint, v T) Uint {
	return Saturate(FromFloat(bits, v))
}

func WrappingFromFloat[T constraints.Float](bits uint, v T) Uint {
	return Wrap(FromFloat(bits, v))
}
