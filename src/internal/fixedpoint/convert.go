package fixedpoint

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Result is the canonical outcome of a quantized operation: the stored
// integer, the real value it actually represents after overflow handling,
// and its hexadecimal register view.
type Result struct {
	Int  *big.Int
	Real float64
	Hex  string
}

func (r Result) String() string {
	return fmt.Sprintf("qi=%s real=%v hex=%s", r.Int, r.Real, r.Hex)
}

// ToReal decodes a stored integer into the real domain. qi may lie outside
// the format range; it is first folded into [0, 2^Width) and, for signed
// formats, remapped into two's-complement range, then divided by the scale.
func ToReal(qi *big.Int, f Format) float64 {
	return ratFloat(foldSigned(qi, f), f.Scale())
}

// ToHex renders qi from the unsigned viewpoint (qi mod 2^Width) as an
// uppercase hexadecimal literal zero-padded to ceil(Width/4) nibbles, the
// form hardware register dumps use.
func ToHex(qi *big.Int, f Format) string {
	u := new(big.Int).Mod(qi, f.Modulus())
	return fmt.Sprintf("0x%0*X", (f.Width+3)/4, u)
}

// RealDecimal decodes a stored integer exactly. qi/2^Frac always terminates
// in decimal (it equals qi*5^Frac * 10^-Frac), so unlike ToReal the result
// carries no floating-point rounding at all.
func RealDecimal(qi *big.Int, f Format) decimal.Decimal {
	folded := foldSigned(qi, f)
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(f.Frac)), nil)
	return decimal.NewFromBigInt(folded.Mul(folded, five), -int32(f.Frac))
}

// Quantize converts a real number to its fixed-point representation:
// round into the integer domain, constrain under the overflow policy, and
// decode both the real and hex views of what was actually stored.
func Quantize(x float64, f Format, overflow Overflow, rounding Rounding) (Result, error) {
	qi, err := RoundToInt(x, f, rounding)
	if err != nil {
		return Result{}, err
	}
	qi, err = ApplyOverflow(qi, f, overflow)
	if err != nil {
		return Result{}, err
	}
	return Result{Int: qi, Real: ToReal(qi, f), Hex: ToHex(qi, f)}, nil
}
