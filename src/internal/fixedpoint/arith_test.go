package fixedpoint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	a := assert.New(t)
	s16 := Format{Width: 16, Frac: 11, Signed: true}
	tests := []struct {
		a, b     float64
		overflow Overflow
		qi       int64
		xr       float64
		hex      string
	}{
		{1.0, 2.0, Wrap, 6144, 3.0, "0x1800"},
		{1.0, -2.0, Wrap, -2048, -1.0, "0xF800"},
		// 10.0 + 10.5 exceeds max_real: wrap vs clip of the sum
		{10.0, 10.5, Wrap, -23552, -11.5, "0xA400"},
		{10.0, 10.5, Saturate, 32767, 15.99951171875, "0x7FFF"},
		// an operand outside the range is constrained before the addition:
		// 16.25 wraps to -15.75 first, so the sum is in range
		{16.25, 0.0, Wrap, -32256, -15.75, "0x8200"},
		// clipped operands: 20.0 -> 32767, 1.0 -> 2048, clipped sum
		{20.0, 1.0, Saturate, 32767, 15.99951171875, "0x7FFF"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := Add(test.a, test.b, s16, test.overflow, RoundNearest)
			a.NoError(err)
			a.Equal(test.qi, res.Int.Int64())
			a.Equal(test.xr, res.Real)
			a.Equal(test.hex, res.Hex)
		})
	}
}

func TestMul(t *testing.T) {
	a := assert.New(t)
	s16 := Format{Width: 16, Frac: 11, Signed: true}
	tests := []struct {
		a, b     float64
		overflow Overflow
		qi       int64
		xr       float64
		hex      string
	}{
		{1.0, 1.0, Wrap, 2048, 1.0, "0x0800"},
		{0.5, 0.5, Wrap, 512, 0.25, "0x0200"},
		// 5.5 * 4.0: product 92274688, bias 1024, >>11 -> 45056
		{5.5, 4.0, Saturate, 32767, 15.99951171875, "0x7FFF"},
		{5.5, 4.0, Wrap, -20480, -10.0, "0xB000"},
		// negative products take the bias downward and the floor shift then
		// lands one LSB below the exact quotient: -92275712 >> 11 = -45057
		{-5.5, 4.0, Saturate, -32768, -16.0, "0x8000"},
		{-5.5, 4.0, Wrap, 20479, 9.99951171875, "0x4FFF"},
		{-1.5, 2.0, Wrap, -6145, -3.00048828125, "0xE7FF"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, err := Mul(test.a, test.b, s16, test.overflow, RoundNearest)
			a.NoError(err)
			a.Equal(test.qi, res.Int.Int64())
			a.Equal(test.xr, res.Real)
			a.Equal(test.hex, res.Hex)
		})
	}
}

func TestMul_RescaleRounding(t *testing.T) {
	a := assert.New(t)
	// The product of the two smallest positive values is 1 in Q(2F), half an
	// LSB below the rescale tie: the biased shift drops it to zero. The
	// mirrored negative product lands at -1 instead, since the downward bias
	// and the sign-extending shift both pull toward negative infinity.
	f := Format{Width: 16, Frac: 11, Signed: true}
	res, err := Mul(f.Resolution(), f.Resolution(), f, Wrap, RoundNearest)
	a.NoError(err)
	a.Equal(int64(0), res.Int.Int64())

	res, err = Mul(-f.Resolution(), f.Resolution(), f, Wrap, RoundNearest)
	a.NoError(err)
	a.Equal(int64(-1), res.Int.Int64())
}

func TestMul_ZeroFrac(t *testing.T) {
	a := assert.New(t)
	// Frac == 0 means plain integer multiply: no bias, no shift.
	f := Format{Width: 16, Frac: 0, Signed: true}
	res, err := Mul(100, -30, f, Saturate, RoundNearest)
	a.NoError(err)
	a.Equal(int64(-3000), res.Int.Int64())
	a.Equal(-3000.0, res.Real)

	res, err = Mul(1000, 1000, f, Saturate, RoundNearest)
	a.NoError(err)
	a.Equal(int64(32767), res.Int.Int64())
}

func TestArith_PolicyErrors(t *testing.T) {
	a := assert.New(t)
	f := Format{Width: 16, Frac: 11, Signed: true}
	_, err := Add(1, 2, f, Overflow(7), RoundNearest)
	a.ErrorIs(err, ErrInvalidArgument)
	_, err = Add(1, 2, f, Wrap, Rounding(7))
	a.ErrorIs(err, ErrInvalidArgument)
	_, err = Mul(1, 2, f, Overflow(7), RoundNearest)
	a.ErrorIs(err, ErrInvalidArgument)
	_, err = Mul(1, 2, f, Wrap, Rounding(7))
	a.ErrorIs(err, ErrInvalidArgument)
	_, err = Mul(1, 2, Format{Width: 8, Frac: 9}, Wrap, RoundNearest)
	a.ErrorIs(err, ErrInvalidArgument)
}
