// Package fixedpoint quantizes real numbers into binary fixed-point formats
// and performs register-style arithmetic on the quantized values. It exists
// to reproduce, bit for bit, what a hardware datapath with a given word
// width, fraction width and overflow behavior would compute, so results are
// reported both as the stored integer and as the real value it denotes.
package fixedpoint

import (
	"fmt"
	"math/big"
)

// Format describes a binary fixed-point representation: Width total bits of
// which Frac are fractional, interpreted as two's complement when Signed.
// It is a pure configuration value; all properties derive from the three
// fields and a Format is never mutated.
type Format struct {
	Width  int
	Frac   int
	Signed bool
}

var one = big.NewInt(1)

// Validate reports whether the format is usable. Frac == Width is permitted
// (a pure-fraction format); negative Frac and Frac > Width are rejected
// rather than given an implicit meaning.
func (f Format) Validate() error {
	if f.Width < 1 {
		return fmt.Errorf("%w: width %d, must be >= 1", ErrInvalidArgument, f.Width)
	}
	if f.Frac < 0 || f.Frac > f.Width {
		return fmt.Errorf("%w: frac %d out of [0, %d]", ErrInvalidArgument, f.Frac, f.Width)
	}
	return nil
}

// Scale returns 2^Frac, the factor between real values and stored integers.
func (f Format) Scale() *big.Int {
	return new(big.Int).Lsh(one, uint(f.Frac))
}

// Modulus returns 2^Width.
func (f Format) Modulus() *big.Int {
	return new(big.Int).Lsh(one, uint(f.Width))
}

// MinInt returns the smallest representable stored integer:
// -2^(Width-1) for signed formats, 0 for unsigned.
func (f Format) MinInt() *big.Int {
	if !f.Signed {
		return new(big.Int)
	}
	m := new(big.Int).Lsh(one, uint(f.Width-1))
	return m.Neg(m)
}

// MaxInt returns the largest representable stored integer:
// 2^(Width-1)-1 for signed formats, 2^Width-1 for unsigned.
func (f Format) MaxInt() *big.Int {
	bits := uint(f.Width)
	if f.Signed {
		bits--
	}
	m := new(big.Int).Lsh(one, bits)
	return m.Sub(m, one)
}

// Resolution returns the real value of one least-significant bit, 2^-Frac.
func (f Format) Resolution() float64 {
	return ratFloat(one, f.Scale())
}

// MinReal returns MinInt scaled into the real domain.
func (f Format) MinReal() float64 {
	return ratFloat(f.MinInt(), f.Scale())
}

// MaxReal returns MaxInt scaled into the real domain.
func (f Format) MaxReal() float64 {
	return ratFloat(f.MaxInt(), f.Scale())
}

// String renders the format in the FixW_F convention, with a leading u for
// unsigned formats, e.g. Fix16_11 or uFix8_8.
func (f Format) String() string {
	if f.Signed {
		return fmt.Sprintf("Fix%d_%d", f.Width, f.Frac)
	}
	return fmt.Sprintf("uFix%d_%d", f.Width, f.Frac)
}

// ratFloat returns num/den as the nearest float64.
func ratFloat(num, den *big.Int) float64 {
	v, _ := new(big.Rat).SetFrac(num, den).Float64()
	return v
}
