package fixedpoint

import "math/big"

// quantizeInt rounds and range-constrains one operand. Arithmetic models
// fixed-point registers: each input is brought into format range before it
// takes part in an operation, so an out-of-range real is clipped or wrapped
// before, not after, the combine step.
func quantizeInt(x float64, f Format, overflow Overflow, rounding Rounding) (*big.Int, error) {
	qi, err := RoundToInt(x, f, rounding)
	if err != nil {
		return nil, err
	}
	return ApplyOverflow(qi, f, overflow)
}

// Add quantizes a and b independently, sums the stored integers, constrains
// the sum under the overflow policy and decodes the result.
func Add(a, b float64, f Format, overflow Overflow, rounding Rounding) (Result, error) {
	ai, err := quantizeInt(a, f, overflow, rounding)
	if err != nil {
		return Result{}, err
	}
	bi, err := quantizeInt(b, f, overflow, rounding)
	if err != nil {
		return Result{}, err
	}
	si, err := ApplyOverflow(ai.Add(ai, bi), f, overflow)
	if err != nil {
		return Result{}, err
	}
	return Result{Int: si, Real: ToReal(si, f), Hex: ToHex(si, f)}, nil
}

// Mul quantizes a and b independently and multiplies the stored integers,
// giving a double-fraction-width product. The product is rounded
// symmetrically to nearest before rescaling: a bias of 2^(Frac-1) is added
// toward the product's sign, then the product is arithmetic-right-shifted by
// Frac bits (big.Int Rsh floors, i.e. sign-extends). The rescaled integer is
// then constrained and decoded as usual.
func Mul(a, b float64, f Format, overflow Overflow, rounding Rounding) (Result, error) {
	ai, err := quantizeInt(a, f, overflow, rounding)
	if err != nil {
		return Result{}, err
	}
	bi, err := quantizeInt(b, f, overflow, rounding)
	if err != nil {
		return Result{}, err
	}
	prod := ai.Mul(ai, bi)
	if f.Frac > 0 {
		bias := new(big.Int).Lsh(one, uint(f.Frac-1))
		if prod.Sign() >= 0 {
			prod.Add(prod, bias)
		} else {
			prod.Sub(prod, bias)
		}
		prod.Rsh(prod, uint(f.Frac))
	}
	qi, err := ApplyOverflow(prod, f, overflow)
	if err != nil {
		return Result{}, err
	}
	return Result{Int: qi, Real: ToReal(qi, f), Hex: ToHex(qi, f)}, nil
}
