/*
Package uintn provides Uint, an unsigned integer of any fixed bit width. The
width does not need to be a power of two or a multiple of 64: a Uint<7> and a
Uint<521> work the same way as a Uint<256>.

Uint values are immutable; all operations return new values. Arithmetic wraps
modulo 2^width.

Simple example:

	a := uintn.Must(uintn.FromString(256, "0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"))
	b := uintn.Must(uintn.FromInteger(256, 12345))
	q, r := a.QuoRem(b)
	fmt.Println(q, r)

Uint can be created from a variety of sources. Every conversion into a Uint
returns the converted value and an error describing why it didn't fit:

	FromLimbs(bits uint, limbs []uint64) Uint
	FromLimbsTruncating(bits uint, limbs []uint64) (out Uint, overflow bool)
	FromInteger[T constraints.Integer](bits uint, v T) (Uint, error)
	FromFloat[T constraints.Float](bits uint, v T) (Uint, error)
	FromBool(bits uint, v bool) (Uint, error)
	FromU128(bits uint, v U128) (Uint, error)
	FromI128(bits uint, v I128) (Uint, error)
	FromUint(bits uint, v Uint) (Uint, error)
	FromBigInt(bits uint, v *big.Int) (Uint, error)
	FromString(bits uint, s string) (Uint, error)

The error is a *ToUintError, which carries the wrapped result. Saturate, Wrap
and Must turn any of those into an infallible conversion:

	uintn.Saturate(uintn.FromInteger(8, 300))  // 255
	uintn.Wrap(uintn.FromInteger(8, 300))      // 44
	uintn.Wrap(uintn.FromInteger(8, -10))      // 246

Conversions out of a Uint work the same way, with SaturateTo, WrapTo and
MustTo:

	uintn.SaturateTo(uintn.ToInteger[int8](u))

DivRem exposes the division engine directly on little-endian limb slices
for code that keeps its own buffers.

Uint supports the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - encoding.BinaryMarshaler
  - encoding.BinaryUnmarshaler

Internal invariant checks are compiled in with the uintn_debug build tag:

	go test -tags uintn_debug ./...

A full test run (without -short) reruns the division and fuzz tests that way.
*/
package uintn
