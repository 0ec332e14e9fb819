package uintn

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shabbyrobe/golib/assert"
)

const (
	full = maxUint64
	half = 1 << 63
)

func limbsToBig(limbs []uint64) *big.Int {
	out := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		out.Lsh(out, limbBits)
		out.Or(out, new(big.Int).SetUint64(limbs[i]))
	}
	return out
}

// randLimbs returns n random limbs. Roughly a third of the limbs are pinned to
// 0 or MaxUint64 so the carry and correction paths get a workout.
func randLimbs(rng *rand.Rand, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		switch rng.Intn(6) {
		case 0:
			out[i] = 0
		case 1:
			out[i] = full
		default:
			out[i] = rng.Uint64()
		}
	}
	return out
}

func TestDivRemNByMGolden(t *testing.T) {
	for idx, tc := range []struct {
		numer []uint64 // includes the zero guard limb
		denom []uint64
		quo   []uint64
		rem   []uint64
	}{
		{ // 4 by 3
			numer: []uint64{40, 31, 79, 84, 0},
			denom: []uint64{53, 12, 12},
			quo:   []uint64{full, 6},
			rem:   []uint64{93, 0xFFFFFFFFFFFFFEB8, 6},
		},
		{ // 8 by 4
			numer: []uint64{
				0x9c2bcebfa9cca2c6, 0x274e154bb5e24f7a, 0xe1442d5d3842be2b, 0xf18f5adfd420853f,
				0x04ed6127eba3b594, 0xc5c179973cdb1663, 0x7d7f67780bb268ff, 3, 0,
			},
			denom: []uint64{0x0181880b078ab6a1, 0x62d67f6b7b0bda6b, 0x92b1840f9c792ded, 0x19},
			quo:   []uint64{0x9128464e61d6b5b3, 0xd9eea4fc30c5ac6c, 0x944a2d832d5a6a08, 0x22f06722e8d883b1, 0},
			rem:   []uint64{0x1dfa5a7ea5191b33, 0xb5aeb3f9ad5e294e, 0xfc710038c13e4eed, 0xb},
		},
		{ // 4 by 4
			numer: []uint64{0xe72530a3d4e91ea3, 0x4edef514135f5899, 0x1868b9a7d418e9c6, 0x6f1480e63854afa4, 0},
			denom: []uint64{0xa62b65900d2a62bb, 0xffb08af4108f9aea, 0xb87126f34ee28533, 0x3ba5ddaec5090ef0},
			quo:   []uint64{1},
			rem:   []uint64{0x40f9cb13c7bebbe8, 0x4f2e6a2002cfbdaf, 0x5ff792b485366492, 0x336ea337734ba0b3},
		},
	} {
		t.Run(fmt.Sprintf("%d/%dby%d", idx, len(tc.numer)-1, len(tc.denom)), func(t *testing.T) {
			tt := assert.WrapTB(t)
			numer := append([]uint64(nil), tc.numer...)
			denom := append([]uint64(nil), tc.denom...)
			divremNbyM(numer, denom)

			n := len(denom)
			tt.MustAssert(cmp.Equal(tc.rem, numer[:n]), "remainder: %s", cmp.Diff(tc.rem, numer[:n]))
			tt.MustAssert(cmp.Equal(tc.quo, numer[n:]), "quotient: %s", cmp.Diff(tc.quo, numer[n:]))
		})

		t.Run(fmt.Sprintf("%d/divrem", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			numer := append([]uint64(nil), tc.numer[:len(tc.numer)-1]...)
			denom := append([]uint64(nil), tc.denom...)
			DivRem(numer, denom)

			expQuo := make([]uint64, len(numer))
			copy(expQuo, tc.quo)
			tt.MustAssert(cmp.Equal(expQuo, numer), "quotient: %s", cmp.Diff(expQuo, numer))
			tt.MustAssert(cmp.Equal(tc.rem, denom), "remainder: %s", cmp.Diff(tc.rem, denom))
		})
	}
}

func TestDiv3By2(t *testing.T) {
	for idx, tc := range []struct {
		n   [3]uint64
		d   [2]uint64
		out uint64
	}{
		{[3]uint64{full, full - 1, half}, [2]uint64{full, half}, full},
		{[3]uint64{0, 0, half}, [2]uint64{full, half}, full - 1},
		{[3]uint64{0, 0, 1}, [2]uint64{0, half}, 2},
		{[3]uint64{5, 0, 0}, [2]uint64{1, half}, 0},

		// Top limbs equal to the divisor. The quotient doesn't fit, and the
		// most the caller can want is MaxUint64:
		{[3]uint64{0, 7, half}, [2]uint64{7, half}, full},
		{[3]uint64{3, 7, half}, [2]uint64{7, half}, full},
		{[3]uint64{full, full, full}, [2]uint64{full, full}, full},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, div3by2(tc.n, tc.d))
		})
	}
}

func TestDiv3By2Random(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 10000; i++ {
		d := [2]uint64{rng.Uint64(), rng.Uint64() | half}
		if i%5 == 0 {
			d[0] = full
		}

		// The top two limbs of the numerator must not be above the divisor.
		// Taking them from the divisor itself hits the n2 == d1 branch often,
		// including n1 == d0.
		var n [3]uint64
		n[0] = rng.Uint64()
		if i%7 == 0 {
			n[0] = 0
		}
		switch rng.Intn(4) {
		case 0:
			n[2], n[1] = d[1], rng.Uint64()
			if n[1] > d[0] {
				n[1] = d[0]
			}
		case 1:
			n[2], n[1] = d[1], d[0]
		default:
			n[2], n[1] = rng.Uint64()%d[1], rng.Uint64()
		}

		nb := limbsToBig(n[:])
		db := limbsToBig(d[:])
		exp := new(big.Int).Quo(nb, db)
		if !exp.IsUint64() {
			tt.MustAssert(n[2] == d[1] && n[1] == d[0], "%d / %d does not fit a limb", nb, db)
			exp.SetUint64(full)
		}

		q := div3by2(n, d)
		tt.MustEqual(exp.Uint64(), q, "%d / %d", nb, db)
	}
}

func TestDivRemRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 5000; i++ {
		numerLen := rng.Intn(9)
		denomLen := rng.Intn(7) + 1

		numer := randLimbs(rng, numerLen)
		denom := randLimbs(rng, denomLen)
		if limbsIsZero(denom) {
			denom[0] = 1
		}

		nb, db := limbsToBig(numer), limbsToBig(denom)
		expQuo, expRem := new(big.Int).QuoRem(nb, db, new(big.Int))

		DivRem(numer, denom)

		if qb := limbsToBig(numer); qb.Cmp(expQuo) != 0 {
			t.Fatalf("%d / %d: expected quotient %d, found %d", nb, db, expQuo, qb)
		}
		if rb := limbsToBig(denom); rb.Cmp(expRem) != 0 {
			t.Fatalf("%d %% %d: expected remainder %d, found %d", nb, db, expRem, rb)
		}
		if len(numer) != numerLen || len(denom) != denomLen {
			t.Fatalf("buffer lengths changed: %d,%d -> %d,%d", numerLen, denomLen, len(numer), len(denom))
		}
	}
}

func TestDivRemSingleLimbAgreesWithPadded(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))

	for i := 0; i < 1000; i++ {
		numer := randLimbs(rng, rng.Intn(6)+1)
		d := rng.Uint64() | 1

		n1 := append([]uint64(nil), numer...)
		d1 := []uint64{d}
		DivRem(n1, d1)

		// Leading zero limbs on the divisor must not change the answer:
		n2 := append([]uint64(nil), numer...)
		d2 := []uint64{d, 0, 0}
		DivRem(n2, d2)

		tt.MustAssert(cmp.Equal(n1, n2), "quotient: %s", cmp.Diff(n1, n2))
		tt.MustEqual([]uint64{d1[0], 0, 0}, d2)
	}
}

func TestDivRemWindowMatchesDivisorTop(t *testing.T) {
	// The second digit's window starts with the divisor's top two limbs, so
	// the estimate has to be MaxUint64 even though n0 is nonzero.
	for idx, tc := range []struct {
		numer []uint64
		denom []uint64
		quo   []uint64
		rem   []uint64
	}{
		{
			numer: []uint64{5, 3, 7, half},
			denom: []uint64{9, 7, half},
			quo:   []uint64{full, 0, 0, 0},
			rem:   []uint64{14, 1, half},
		},
		{
			numer: []uint64{5, 0, 7, half},
			denom: []uint64{9, 7, half},
			quo:   []uint64{full, 0, 0, 0},
			rem:   []uint64{14, full - 1, half - 1},
		},
		{ // Unnormalized, so the window only shares the top limb.
			numer: []uint64{5, 3, 7, 1},
			denom: []uint64{9, 7, 1},
			quo:   []uint64{full, 0, 0, 0},
			rem:   []uint64{14, 1, 1},
		},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			nb, db := limbsToBig(tc.numer), limbsToBig(tc.denom)
			expQuo, expRem := new(big.Int).QuoRem(nb, db, new(big.Int))
			tt.MustAssert(expQuo.Cmp(limbsToBig(tc.quo)) == 0, "bad quotient vector, expected %#x", expQuo)
			tt.MustAssert(expRem.Cmp(limbsToBig(tc.rem)) == 0, "bad remainder vector, expected %#x", expRem)

			numer := append([]uint64(nil), tc.numer...)
			denom := append([]uint64(nil), tc.denom...)
			DivRem(numer, denom)
			tt.MustAssert(cmp.Equal(tc.quo, numer), "quotient: %s", cmp.Diff(tc.quo, numer))
			tt.MustAssert(cmp.Equal(tc.rem, denom), "remainder: %s", cmp.Diff(tc.rem, denom))
		})
	}
}

func TestDivRemShortNumerator(t *testing.T) {
	tt := assert.WrapTB(t)
	numer := []uint64{7, 9}
	denom := []uint64{1, 2, 3}
	DivRem(numer, denom)
	tt.MustEqual([]uint64{0, 0}, numer)
	tt.MustEqual([]uint64{7, 9, 0}, denom)
}

func TestDivRemEmptyNumerator(t *testing.T) {
	tt := assert.WrapTB(t)
	numer := []uint64{}
	denom := []uint64{3}
	DivRem(numer, denom)
	tt.MustEqual([]uint64{0}, denom)

	denom = []uint64{3, 4}
	DivRem(numer, denom)
	tt.MustEqual([]uint64{0, 0}, denom)
}

func TestDivRemEqual(t *testing.T) {
	tt := assert.WrapTB(t)
	numer := []uint64{0xa, 0xb, 0xc}
	denom := []uint64{0xa, 0xb, 0xc}
	DivRem(numer, denom)
	tt.MustEqual([]uint64{1, 0, 0}, numer)
	tt.MustEqual([]uint64{0, 0, 0}, denom)
}

func TestDivRemByZero(t *testing.T) {
	for idx, denom := range [][]uint64{
		{},
		{0},
		{0, 0, 0},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			numer := []uint64{1, 2, 3}

			func() {
				defer func() {
					r := recover()
					tt.MustEqual(ErrDivisionByZero, r)
				}()
				DivRem(numer, denom)
			}()

			// Buffers must be left alone:
			tt.MustEqual([]uint64{1, 2, 3}, numer)
			tt.MustAssert(limbsIsZero(denom))
		})
	}
}

func TestMsb(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(fuzzSeed))
	wrap := new(big.Int).Lsh(big1, 64)

	for i := 0; i < 2000; i++ {
		a, b, c, borrow := rng.Uint64(), rng.Uint64(), rng.Uint64(), rng.Uint64()
		if i%4 == 0 {
			b, c, borrow = full, full, full
		}
		diff, borrowOut := msb(a, b, c, borrow)

		// a - (b*c + borrow) == diff - borrowOut * 2^64
		exp := new(big.Int).Mul(new(big.Int).SetUint64(b), new(big.Int).SetUint64(c))
		exp.Add(exp, new(big.Int).SetUint64(borrow))
		exp.Sub(new(big.Int).SetUint64(a), exp)

		found := new(big.Int).Mul(new(big.Int).SetUint64(borrowOut), wrap)
		found.Sub(new(big.Int).SetUint64(diff), found)
		tt.MustAssert(exp.Cmp(found) == 0, "msb(%d, %d, %d, %d): expected %d, found %d", a, b, c, borrow, exp, found)
	}
}
