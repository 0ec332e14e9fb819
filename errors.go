package uintn

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDivisionByZero is the panic value for a division with a zero divisor.
	ErrDivisionByZero = errors.New("uintn: division by zero")

	ErrValueTooLarge = errors.New("uintn: value too large")
	ErrValueNegative = errors.New("uintn: value negative")
	ErrNotANumber    = errors.New("uintn: value is NaN")
	ErrOverflow      = errors.New("uintn: overflow")
)

// ToUintErrorKind is the reason a conversion into a Uint failed.
type ToUintErrorKind int

const (
	// ValueTooLarge means the value needs more bits than the target width.
	ValueTooLarge ToUintErrorKind = iota + 1

	// ValueNegative means the value is below zero.
	ValueNegative

	// NotANumber means the value is a floating point NaN.
	NotANumber
)

func (k ToUintErrorKind) String() string {
	switch k {
	case ValueTooLarge:
		return "ValueTooLarge"
	case ValueNegative:
		return "ValueNegative"
	case NotANumber:
		return "NotANumber"
	default:
		return fmt.Sprintf("ToUintErrorKind(%d)", int(k))
	}
}

// ToUintError is returned when a value can not be represented exactly in a
// Uint of the requested width.
//
// Wrapped carries the value a wrapping conversion would produce: the input
// truncated to Bits for ValueTooLarge, the two's complement for ValueNegative
// and zero for NotANumber. Saturate and Wrap project results out of it without
// redoing the conversion.
type ToUintError struct {
	Kind    ToUintErrorKind
	Bits    uint
	Wrapped Uint
}

func (e *ToUintError) Error() string {
	switch e.Kind {
	case ValueTooLarge:
		return fmt.Sprintf("uintn: value is too large for Uint<%d>", e.Bits)
	case ValueNegative:
		return fmt.Sprintf("uintn: negative values can not be represented as Uint<%d>", e.Bits)
	case NotANumber:
		return fmt.Sprintf("uintn: NaN can not be represented as Uint<%d>", e.Bits)
	default:
		return fmt.Sprintf("uintn: conversion to Uint<%d> failed", e.Bits)
	}
}

// Is allows errors.Is(err, ErrValueTooLarge) and friends.
func (e *ToUintError) Is(target error) bool {
	switch e.Kind {
	case ValueTooLarge:
		return target == ErrValueTooLarge
	case ValueNegative:
		return target == ErrValueNegative
	case NotANumber:
		return target == ErrNotANumber
	}
	return false
}

func tooLarge(bits uint, wrapped Uint) (Uint, error) {
	return wrapped, &ToUintError{Kind: ValueTooLarge, Bits: bits, Wrapped: wrapped}
}

func negative(bits uint, wrapped Uint) (Uint, error) {
	return wrapped, &ToUintError{Kind: ValueNegative, Bits: bits, Wrapped: wrapped}
}

func notANumber(bits uint) (Uint, error) {
	zero := Zero(bits)
	return zero, &ToUintError{Kind: NotANumber, Bits: bits, Wrapped: zero}
}

// FromUintError is returned when a Uint does not fit the native type T.
//
// Bits is the width of the source Uint, Wrapped is the value truncated to T
// and Max is the largest value T can hold.
type FromUintError[T any] struct {
	Bits    uint
	Wrapped T
	Max     T
}

func (e *FromUintError[T]) Error() string {
	return fmt.Sprintf("uintn: Uint<%d> value is too large for %T", e.Bits, e.Max)
}

// Is allows errors.Is(err, ErrOverflow).
func (e *FromUintError[T]) Is(target error) bool {
	return target == ErrOverflow
}

func overflow[T any](bits uint, wrapped, limit T) (T, error) {
	return wrapped, &FromUintError[T]{Bits: bits, Wrapped: wrapped, Max: limit}
}
