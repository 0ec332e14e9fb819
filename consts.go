package uintn

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	// limbBits is the size of a single limb. Everything in this package
	// assumes 64-bit limbs regardless of the platform word size.
	limbBits = 64

	// IEEE-754 binary64 layout:
	float64MantBits = 52
	float64ExpMask  = 0x7FF
	float64Bias     = 1023
	float64FracMask = 1<<float64MantBits - 1

	// float64Half is one half, added before truncation so values round to the
	// nearest integer with ties going away from zero.
	float64Half = 0.5

	intSize = 32 << (^uint(0) >> 63)
)

var big1 = new(big.Int).SetInt64(1)
