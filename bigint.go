package uintn

import (
	"math/big"
)

// FromBigInt converts a big.Int into a Uint of the given width. Values that
// don't fit fail with ValueTooLarge, negative values with ValueNegative; in
// both cases the wrapped value is v modulo 2^bits.
func FromBigInt(bits uint, v *big.Int) (Uint, error) {
	limbs := bigToLimbs(v)
	if v.Sign() < 0 {
		mag, _ := FromLimbsTruncating(bits, limbs)
		return negative(bits, mag.Neg())
	}
	out, overflow := FromLimbsTruncating(bits, limbs)
	if overflow {
		return tooLarge(bits, out)
	}
	return out, nil
}

// bigToLimbs returns the magnitude of v as 64-bit limbs.
func bigToLimbs(v *big.Int) []uint64 {
	words := v.Bits()

	switch intSize {
	case 64:
		limbs := make([]uint64, len(words))
		for i, w := range words {
			limbs[i] = uint64(w)
		}
		return limbs

	case 32:
		limbs := make([]uint64, (len(words)+1)/2)
		for i, w := range words {
			limbs[i/2] |= uint64(w) << (32 * uint(i%2))
		}
		return limbs

	default:
		panic("uintn: unsupported bit size")
	}
}

// IntoBigInt copies u into b, allowing you to retain and recycle memory.
func (u Uint) IntoBigInt(b *big.Int) {
	words := b.Bits()[:0]

	switch intSize {
	case 64:
		for _, l := range u.limbs {
			words = append(words, big.Word(l))
		}

	case 32:
		for _, l := range u.limbs {
			words = append(words, big.Word(l&0xFFFFFFFF), big.Word(l>>32))
		}

	default:
		panic("uintn: unsupported bit size")
	}

	b.SetBits(words)
}

// AsBigInt allocates a new big.Int and copies u into it.
func (u Uint) AsBigInt() *big.Int {
	var b big.Int
	u.IntoBigInt(&b)
	return &b
}

func (u Uint) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(u.AsBigInt())
}
