package uintn

import (
	"fmt"
	"math/big"
)

// U128 stands in for the native unsigned 128-bit integer Go doesn't have. It
// is only used as a conversion source and target; do arithmetic on a
// Uint of width 128 instead.
type U128 struct {
	Hi, Lo uint64
}

// I128 is a two's complement signed 128-bit integer, used the same way as
// U128.
type I128 struct {
	Hi, Lo uint64
}

const signBit = 0x8000000000000000

var (
	MaxU128 = U128{Hi: maxUint64, Lo: maxUint64}
	MaxI128 = I128{Hi: maxInt64, Lo: maxUint64}
	MinI128 = I128{Hi: signBit, Lo: 0}
)

func U128From64(v uint64) U128 { return U128{Lo: v} }

// I128From64 sign-extends v into an I128.
func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{Hi: hi, Lo: uint64(v)}
}

func (u U128) IsZero() bool { return u.Hi|u.Lo == 0 }

func (u U128) Cmp(n U128) int {
	if u.Hi > n.Hi {
		return 1
	} else if u.Hi < n.Hi {
		return -1
	} else if u.Lo > n.Lo {
		return 1
	} else if u.Lo < n.Lo {
		return -1
	}
	return 0
}

func (u U128) String() string { return u.AsBigInt().String() }

func (u U128) Format(s fmt.State, c rune) { u.AsBigInt().Format(s, c) }

func (u U128) AsBigInt() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// AsI128 reinterprets the bits of u as a two's complement I128.
func (u U128) AsI128() I128 { return I128(u) }

func (i I128) IsNeg() bool { return i.Hi&signBit != 0 }

func (i I128) Sign() int {
	if i.IsNeg() {
		return -1
	} else if i.Hi|i.Lo == 0 {
		return 0
	}
	return 1
}

// AsU128 reinterprets the bits of i as a U128. Negative numbers become values
// above MaxI128.
func (i I128) AsU128() U128 { return U128(i) }

func (i I128) String() string { return i.AsBigInt().String() }

func (i I128) Format(s fmt.State, c rune) { i.AsBigInt().Format(s, c) }

func (i I128) AsBigInt() *big.Int {
	b := U128(i).AsBigInt()
	if i.IsNeg() {
		b.Sub(b, wrapBigU128)
	}
	return b
}

// wrapBigU128 is 1 << 128, used to move between the signed and unsigned
// readings of the same 128 bits.
var wrapBigU128 = new(big.Int).Lsh(big1, 128)
