package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	uintn "github.com/shabbyrobe/go-uintn"
)

// This is a small calculator for poking at the division and conversion
// engines from the command line. It prints the raw limbs of every result so
// they can be pasted straight into a test table.
//
// The 'recip' command finds the magic multiplier compilers use to turn
// division by a constant into a multiplication, for any width. It exercises
// division at double width, which makes it a handy smoke test.

const usage = `Fixed-width calculator

Usage:
  uintcalc <bits> divrem <numer> <denom>
  uintcalc <bits> from <value>
  uintcalc <bits> limbs <value>
  uintcalc <bits> recip <denom>`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) < 3 {
		fmt.Println(usage)
		return fmt.Errorf("missing args")
	}

	bits, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return errors.Wrap(err, "invalid bits")
	}
	width := uint(bits)

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "divrem":
		if len(rest) < 2 {
			return fmt.Errorf("divrem needs <numer> <denom>")
		}
		return runDivRem(width, rest[0], rest[1])

	case "from":
		return runFrom(width, rest[0])

	case "limbs":
		v, err := uintn.FromString(width, rest[0])
		if err != nil {
			return err
		}
		fmt.Printf("%d (bitlen %d)\n", v, v.BitLen())
		spew.Dump(v.Limbs())
		return nil

	case "recip":
		return runRecip(width, rest[0])

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runDivRem(width uint, numerStr, denomStr string) error {
	numer, err := uintn.FromString(width, numerStr)
	if err != nil {
		return err
	}
	denom, err := uintn.FromString(width, denomStr)
	if err != nil {
		return err
	}
	if denom.IsZero() {
		return uintn.ErrDivisionByZero
	}

	q, r := numer.QuoRem(denom)
	fmt.Printf("%d / %d == %d rem %d\n", numer, denom, q, r)
	spew.Dump(map[string][]uint64{
		"quotient":  q.Limbs(),
		"remainder": r.Limbs(),
	})
	return nil
}

func runFrom(width uint, in string) error {
	var (
		v   uintn.Uint
		err error
	)
	if strings.ContainsAny(in, ".eE") || strings.EqualFold(in, "nan") || strings.HasSuffix(strings.ToLower(in), "inf") {
		f, perr := strconv.ParseFloat(in, 64)
		if perr != nil {
			return perr
		}
		v, err = uintn.FromFloat(width, f)
	} else {
		v, err = uintn.FromString(width, in)
	}

	fmt.Printf("value:      %d\n", v)
	fmt.Printf("error:      %v\n", err)
	fmt.Printf("saturating: %d\n", uintn.Saturate(v, err))
	fmt.Printf("wrapping:   %d\n", uintn.Wrap(v, err))
	fmt.Printf("float64:    %g\n", v.Float64())
	if err != nil {
		spew.Dump(err)
	}
	return nil
}

func runRecip(width uint, denomStr string) error {
	denom, err := uintn.FromString(width, denomStr)
	if err != nil {
		return err
	}
	if denom.IsZero() {
		return uintn.ErrDivisionByZero
	}

	recip, shift, add := divFindMul(denom)
	fmt.Printf("recip:%#x shift:%d add:%v\n", recip, shift, add)
	spew.Dump(recip.Limbs())

	// Spot check the multiplier against real division at the top of the
	// range, where it's most likely to go wrong:
	numer := uintn.Max(width)
	want := numer.Quo(denom)
	got := divMul(numer, recip, shift, add)
	if !got.Equal(want) {
		return fmt.Errorf("recip check failed: %d / %d, expected %d, found %d", numer, denom, want, got)
	}
	fmt.Printf("%d / %d == %d\n", numer, denom, got)
	return nil
}

// divFindMul finds m, s such that n / d == (n * m) >> (width + s) for every
// n of the width, using the "round up" method. If add is set, m needs one
// more bit than the width and divMul must use the fixup sequence.
func divFindMul(denom uintn.Uint) (recip uintn.Uint, shift uint, add bool) {
	width := denom.Width()
	floorLog2d := denom.BitLen() - 1

	one := uintn.Must(uintn.FromInteger(width, 1))
	if denom.And(denom.Sub(one)).IsZero() {
		// Powers of two are just a shift, but fit the same shape:
		return uintn.Zero(width), floorLog2d, true
	}

	wide := width * 2
	d := uintn.Must(uintn.FromUint(wide, denom))
	proposedM, rem := uintn.Must(uintn.FromInteger(wide, 1)).
		Lsh(floorLog2d).
		Lsh(width). // move into the hi half of a double-width number
		QuoRem(d)

	proposed := uintn.Must(uintn.FromUint(width, proposedM))
	rem = uintn.Must(uintn.FromUint(width, rem))

	e := denom.Sub(rem)
	if e.LessThan(one.Lsh(floorLog2d)) {
		shift = floorLog2d
	} else {
		proposed = proposed.Add(proposed)
		twiceRem := rem.Add(rem)
		if twiceRem.GreaterOrEqualTo(denom) || twiceRem.LessThan(rem) {
			proposed = proposed.Add(one)
		}
		shift = floorLog2d
		add = true
	}

	return proposed.Add(one), shift, add
}

func divMul(numer, recip uintn.Uint, shift uint, add bool) uintn.Uint {
	width := numer.Width()
	wide := width * 2

	q := numer
	if !recip.IsZero() {
		n := uintn.Must(uintn.FromUint(wide, numer))
		m := uintn.Must(uintn.FromUint(wide, recip))
		q = uintn.Must(uintn.FromUint(width, n.Mul(m).Rsh(width)))
	}

	if add {
		if recip.IsZero() {
			return numer.Rsh(shift)
		}
		t := numer.Sub(q).Rsh(1).Add(q)
		return t.Rsh(shift)
	}
	return q.Rsh(shift)
}
