package uintn

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("uintn: big string %q invalid", s))
	}
	return v
}

func TestFromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		bits uint
		in   *big.Int
		out  []uint64
		kind ToUintErrorKind
	}{
		{0, bigs("0"), []uint64{}, 0},
		{0, bigs("1"), []uint64{}, ValueTooLarge},
		{8, bigs("255"), []uint64{255}, 0},
		{8, bigs("-1"), []uint64{255}, ValueNegative},
		{100, bigs("-1"), []uint64{maxUint64, 0xFFFFFFFFF}, ValueNegative},
		{100, bigs("0x1_0000000000000000_0000000000000005"), []uint64{5, 0}, ValueTooLarge},
		{192, bigs("0x1_0000000000000000_0000000000000005"), []uint64{5, 0, 1}, 0},
	} {
		t.Run(fmt.Sprintf("%d/%d@%d", idx, tc.in, tc.bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := FromBigInt(tc.bits, tc.in)
			tt.MustEqual(tc.kind, kindOf(err))
			tt.MustEqual(tc.out, out.Limbs())
		})
	}
}

func TestBigIntRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(fuzzSeed))
	for _, bits := range []uint{0, 1, 64, 65, 128, 200, 1000} {
		t.Run(fmt.Sprintf("%d", bits), func(t *testing.T) {
			tt := assert.WrapTB(t)
			var scratch big.Int
			for i := 0; i < 200; i++ {
				in := RandUint(bits, rng)
				out, err := FromBigInt(bits, in.AsBigInt())
				tt.MustOK(err)
				tt.MustAssert(in.Equal(out))

				// IntoBigInt must overwrite whatever was in scratch before:
				in.IntoBigInt(&scratch)
				tt.MustEqual(0, scratch.Cmp(in.AsBigInt()))
				tt.MustEqual(in.String(), scratch.String())
			}
		})
	}
}

func TestAsBigFloat(t *testing.T) {
	tt := assert.WrapTB(t)
	f := Max(200).AsBigFloat()
	i, acc := f.Int(nil)
	tt.MustEqual(big.Exact, acc)
	tt.MustEqual(0, i.Cmp(Max(200).AsBigInt()))
}
