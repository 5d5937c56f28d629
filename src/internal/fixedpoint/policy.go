package fixedpoint

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// ErrInvalidArgument is the only failure class in this package: an
// out-of-range policy token, an unusable format, or a non-finite input.
var ErrInvalidArgument = errors.New("fixedpoint: invalid argument")

// Rounding selects how a scaled real value is taken to an integer.
type Rounding uint8

const (
	// RoundNearest rounds to the closest integer; exact halves go to the
	// nearest even integer.
	RoundNearest Rounding = iota
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundCeil rounds toward positive infinity.
	RoundCeil
)

// ParseRounding maps a textual policy token to its Rounding value.
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "nearest":
		return RoundNearest, nil
	case "floor":
		return RoundFloor, nil
	case "ceil":
		return RoundCeil, nil
	}
	return 0, fmt.Errorf("%w: rounding %q, want nearest, floor or ceil", ErrInvalidArgument, s)
}

func (r Rounding) String() string {
	switch r {
	case RoundNearest:
		return "nearest"
	case RoundFloor:
		return "floor"
	case RoundCeil:
		return "ceil"
	}
	return fmt.Sprintf("Rounding(%d)", uint8(r))
}

// Overflow selects what happens to a stored integer outside the format range.
type Overflow uint8

const (
	// Wrap discards high-order bits: reduce mod 2^Width, then fold signed
	// results back into two's-complement range.
	Wrap Overflow = iota
	// Saturate clamps to the nearest range boundary.
	Saturate
)

// ParseOverflow maps a textual policy token to its Overflow value.
func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "wrap":
		return Wrap, nil
	case "saturate":
		return Saturate, nil
	}
	return 0, fmt.Errorf("%w: overflow %q, want wrap or saturate", ErrInvalidArgument, s)
}

func (o Overflow) String() string {
	switch o {
	case Wrap:
		return "wrap"
	case Saturate:
		return "saturate"
	}
	return fmt.Sprintf("Overflow(%d)", uint8(o))
}

// RoundToInt scales x by 2^Frac and rounds the result to an integer under
// the given policy. The scaled value is handled as an exact rational, so
// floor, ceil and the ties-to-even rule are exact for every float64 input.
func RoundToInt(x float64, f Format, rounding Rounding) (*big.Int, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("%w: non-finite input %v", ErrInvalidArgument, x)
	}
	y := new(big.Rat).SetFloat64(x)
	y.Mul(y, new(big.Rat).SetInt(f.Scale()))

	num, den := y.Num(), y.Denom() // den > 0 by big.Rat invariant
	quo, rem := new(big.Int), new(big.Int)
	quo.DivMod(num, den, rem) // Euclidean: quo is floor(y), rem in [0, den)

	switch rounding {
	case RoundFloor:
		return quo, nil
	case RoundCeil:
		if rem.Sign() != 0 {
			quo.Add(quo, one)
		}
		return quo, nil
	case RoundNearest:
		rem.Lsh(rem, 1)
		switch rem.Cmp(den) {
		case -1:
			return quo, nil
		case 1:
			return quo.Add(quo, one), nil
		default: // exact half: take the even neighbor
			if quo.Bit(0) == 1 {
				quo.Add(quo, one)
			}
			return quo, nil
		}
	}
	return nil, fmt.Errorf("%w: rounding %s", ErrInvalidArgument, rounding)
}

// ApplyOverflow constrains qi into the format's representable range under
// the given policy and returns the constrained integer. qi is not modified.
func ApplyOverflow(qi *big.Int, f Format, overflow Overflow) (*big.Int, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	switch overflow {
	case Wrap:
		return foldSigned(qi, f), nil
	case Saturate:
		if min := f.MinInt(); qi.Cmp(min) < 0 {
			return min, nil
		}
		if max := f.MaxInt(); qi.Cmp(max) > 0 {
			return max, nil
		}
		return new(big.Int).Set(qi), nil
	}
	return nil, fmt.Errorf("%w: overflow %s", ErrInvalidArgument, overflow)
}

// foldSigned reduces qi mod 2^Width and, for signed formats, remaps the
// upper half of the residues into the negative two's-complement range.
// big.Int.Mod is Euclidean, so negative inputs wrap correctly.
func foldSigned(qi *big.Int, f Format) *big.Int {
	u := new(big.Int).Mod(qi, f.Modulus())
	if f.Signed {
		half := new(big.Int).Lsh(one, uint(f.Width-1))
		if u.Cmp(half) >= 0 {
			u.Sub(u, f.Modulus())
		}
	}
	return u
}
