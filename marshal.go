package uintn

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// FromString creates a Uint from a string. Go-style base prefixes ("0x",
// "0o", "0b") and underscores are accepted. Syntax errors are returned as-is;
// values out of range fail the same way as FromBigInt.
func FromString(bits uint, s string) (Uint, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return newUint(bits), errors.Errorf("uintn: Uint<%d> string %q invalid", bits, s)
	}
	return FromBigInt(bits, b)
}

func (u Uint) String() string {
	if limbsLen(u.limbs) <= 1 {
		return strconv.FormatUint(u.Limb(0), 10)
	}
	return u.AsBigInt().String()
}

// Format supports all the verbs supported by big.Int.
func (u Uint) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// MarshalText encodes u as a decimal string.
func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText decodes a string into u, using the width u already has. To
// decode into a 256-bit Uint, start with uintn.Zero(256).
func (u *Uint) UnmarshalText(bts []byte) error {
	v, err := FromString(u.bits, string(bts))
	if err != nil {
		return errors.Wrapf(err, "uintn: could not unmarshal Uint<%d> text", u.bits)
	}
	*u = v
	return nil
}

// MarshalJSON encodes u as a quoted decimal string, as the values are often
// too large for JavaScript numbers.
func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

// UnmarshalJSON accepts quoted or bare numbers. See UnmarshalText for how the
// width is chosen.
func (u *Uint) UnmarshalJSON(bts []byte) error {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Errorf("uintn: Uint<%d> invalid JSON %q", u.bits, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}

// MarshalBinary encodes u as LimbCount(Width()) little-endian 64-bit words.
func (u Uint) MarshalBinary() ([]byte, error) {
	out := make([]byte, len(u.limbs)*8)
	for i, l := range u.limbs {
		binary.LittleEndian.PutUint64(out[i*8:], l)
	}
	return out, nil
}

// UnmarshalBinary decodes the output of MarshalBinary into u, using the width
// u already has. The input length must match exactly and the top word must
// not have bits set above the width.
func (u *Uint) UnmarshalBinary(bts []byte) error {
	n := LimbCount(u.bits)
	if len(bts) != n*8 {
		return errors.Errorf("uintn: Uint<%d> binary expects %d bytes, found %d", u.bits, n*8, len(bts))
	}
	limbs := make([]uint64, n)
	for i := range limbs {
		limbs[i] = binary.LittleEndian.Uint64(bts[i*8:])
	}
	if !isMasked(u.bits, limbs) {
		wrapped, _ := FromLimbsTruncating(u.bits, limbs)
		_, err := tooLarge(u.bits, wrapped)
		return errors.Wrapf(err, "uintn: Uint<%d> binary has bits set above the width", u.bits)
	}
	*u = Uint{bits: u.bits, limbs: limbs}
	return nil
}
