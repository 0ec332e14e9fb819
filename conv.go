package uintn

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Conversions into a Uint return the converted value and a nil error, or a
// *ToUintError. When the error is not nil, the returned Uint is the error's
// Wrapped value, so callers that want wrapping semantics can ignore the
// error entirely.
//
// Conversions out of a Uint return the converted value and a nil error, or a
// *FromUintError whose Wrapped value is also returned.

// nativeBits returns the width of T in bits.
func nativeBits[T constraints.Integer]() uint {
	var v T
	return uint(unsafe.Sizeof(v)) * 8
}

func isSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}

// nativeMax returns the largest value T can hold.
func nativeMax[T constraints.Integer]() T {
	if isSigned[T]() {
		return T(uint64(1)<<(nativeBits[T]()-1) - 1)
	}
	return ^T(0)
}

// FromInteger converts any native integer into a Uint of the given width.
//
// Values above 2^bits - 1 fail with ValueTooLarge, carrying the value
// truncated to bits. Negative values fail with ValueNegative, carrying the
// two's complement bit pattern of v at its own width, truncated to bits.
func FromInteger[T constraints.Integer](bits uint, v T) (Uint, error) {
	if isSigned[T]() && v < 0 {
		raw := uint64(v)
		if w := nativeBits[T](); w < limbBits {
			raw &= 1<<w - 1
		}
		wrapped, _ := fromUint64(bits, raw)
		return negative(bits, wrapped)
	}
	return fromUint64(bits, uint64(v))
}

func fromUint64(bits uint, v uint64) (Uint, error) {
	out := newUint(bits)
	if len(out.limbs) == 0 {
		if v != 0 {
			return tooLarge(bits, out)
		}
		return out, nil
	}
	out.limbs[0] = v
	if len(out.limbs) == 1 && v > Mask(bits) {
		out.limbs[0] &= Mask(bits)
		return tooLarge(bits, out)
	}
	return out, nil
}

// FromBool converts false to 0 and true to 1. Only a zero-width Uint can fail.
func FromBool(bits uint, v bool) (Uint, error) {
	if v {
		return fromUint64(bits, 1)
	}
	return fromUint64(bits, 0)
}

// FromU128 converts a native 128-bit unsigned integer. See FromInteger.
func FromU128(bits uint, v U128) (Uint, error) {
	out, overflow := FromLimbsTruncating(bits, []uint64{v.Lo, v.Hi})
	if overflow {
		return tooLarge(bits, out)
	}
	return out, nil
}

// FromI128 converts a native 128-bit signed integer. See FromInteger.
func FromI128(bits uint, v I128) (Uint, error) {
	if v.IsNeg() {
		wrapped, _ := FromU128(bits, v.AsU128())
		return negative(bits, wrapped)
	}
	return FromU128(bits, v.AsU128())
}

// FromUint converts a Uint of any width into one of the given width. Values
// with significant bits at or above the new width fail with ValueTooLarge.
func FromUint(bits uint, v Uint) (Uint, error) {
	out, overflow := FromLimbsTruncating(bits, v.limbs)
	if overflow {
		return tooLarge(bits, out)
	}
	return out, nil
}

// Resize is FromUint with the arguments the other way around, for chaining.
func (u Uint) Resize(bits uint) (Uint, error) {
	return FromUint(bits, u)
}

// ToBool converts 0 and 1 to false and true. Anything else fails with an
// overflow carrying the lowest bit.
func ToBool(u Uint) (bool, error) {
	if u.bits == 0 {
		return false, nil
	}
	if u.BitLen() > 1 {
		return overflow(u.bits, u.Bit(0), true)
	}
	return u.limbs[0] != 0, nil
}

// ToInteger converts u into any native integer type. Values that need more
// bits than T has available (one less for signed types) fail with an
// overflow carrying the low bits of u reinterpreted as T.
func ToInteger[T constraints.Integer](u Uint) (T, error) {
	if u.bits == 0 {
		return 0, nil
	}
	valueBits := nativeBits[T]()
	if isSigned[T]() {
		valueBits--
	}
	wrapped := T(u.limbs[0])
	if u.BitLen() > valueBits {
		return overflow(u.bits, wrapped, nativeMax[T]())
	}
	return wrapped, nil
}

// ToU128 converts u into a native 128-bit unsigned integer.
func ToU128(u Uint) (U128, error) {
	out := U128{Hi: u.Limb(1), Lo: u.Limb(0)}
	if u.BitLen() > 128 {
		return overflow(u.bits, out, MaxU128)
	}
	return out, nil
}

// ToI128 converts u into a native 128-bit signed integer.
func ToI128(u Uint) (I128, error) {
	out := I128{Hi: u.Limb(1), Lo: u.Limb(0)}
	if u.BitLen() > 127 {
		return overflow(u.bits, out, MaxI128)
	}
	return out, nil
}

// Saturate projects the result of a conversion into a Uint onto the
// saturating policy: ValueTooLarge becomes the maximum for the width,
// ValueNegative and NotANumber become zero.
//
//	v := uintn.Saturate(uintn.FromInteger(8, 300)) // 255
//
// Errors that did not come from a conversion leave u untouched.
func Saturate(u Uint, err error) Uint {
	var cerr *ToUintError
	if err == nil || !errors.As(err, &cerr) {
		return u
	}
	if cerr.Kind == ValueTooLarge {
		return Max(cerr.Bits)
	}
	return Zero(cerr.Bits)
}

// Wrap projects the result of a conversion into a Uint onto the wrapping
// policy: the value modulo 2^bits, or zero for NotANumber.
//
//	v := uintn.Wrap(uintn.FromInteger(8, -10)) // 246
func Wrap(u Uint, err error) Uint {
	var cerr *ToUintError
	if err == nil || !errors.As(err, &cerr) {
		return u
	}
	return cerr.Wrapped
}

// Must panics if err is not nil.
func Must(u Uint, err error) Uint {
	if err != nil {
		panic(errors.Wrap(err, "uintn: conversion failed"))
	}
	return u
}

// SaturateTo projects the result of a conversion out of a Uint onto the
// saturating policy: an overflow becomes the maximum value of T.
func SaturateTo[T any](v T, err error) T {
	var cerr *FromUintError[T]
	if err != nil && errors.As(err, &cerr) {
		return cerr.Max
	}
	return v
}

// WrapTo projects the result of a conversion out of a Uint onto the wrapping
// policy: an overflow becomes the low bits of the Uint.
func WrapTo[T any](v T, err error) T {
	var cerr *FromUintError[T]
	if err != nil && errors.As(err, &cerr) {
		return cerr.Wrapped
	}
	return v
}

// MustTo panics if err is not nil.
func MustTo[T any](v T, err error) T {
	if err != nil {
		panic(errors.Wrap(err, "uintn: conversion failed"))
	}
	return v
}

func SaturatingFromInteger[T constraints.Integer](bits uint, v T) Uint {
	return Saturate(FromInteger(bits, v))
}

func WrappingFromInteger[T constraints.Integer](bits uint, v T) Uint {
	return Wrap(FromInteger(bits, v))
}

func SaturatingToInteger[T constraints.Integer](u Uint) T {
	return SaturateTo[T](ToInteger[T](u))
}

func WrappingToInteger[T constraints.Integer](u Uint) T {
	return WrapTo[T](ToInteger[T](u))
}
