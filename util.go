package uintn

type RandSource interface {
	Uint64() uint64
}

// RandUint generates a random Uint of the given width from an external
// source, such as a *math/rand.Rand.
func RandUint(bits uint, source RandSource) Uint {
	out := newUint(bits)
	for i := range out.limbs {
		out.limbs[i] = source.Uint64()
	}
	maskLimbs(bits, out.limbs)
	return out
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Uint) Uint {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b Uint) Uint {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func Smaller(a, b Uint) Uint {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
