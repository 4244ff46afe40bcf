package field

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/tuneinsight/polyroots/utils/bignum"
)

// BigComplex is the field of arbitrary precision complex numbers.
// Every value it returns is a freshly allocated *bignum.Complex with
// Prec() bits of mantissa for both components.
type BigComplex struct {
	prec uint
}

// NewBigComplex returns the field of complex numbers with prec bits of precision.
func NewBigComplex(prec uint) BigComplex {
	if prec == 0 {
		panic(fmt.Errorf("invalid precision: must be greater than zero"))
	}
	return BigComplex{prec: prec}
}

// Prec returns the precision in bits of the field.
func (f BigComplex) Prec() uint {
	return f.prec
}

func (f BigComplex) Zero() *bignum.Complex {
	return bignum.ToComplex(0, f.prec)
}

func (f BigComplex) FromInt(x int) *bignum.Complex {
	return bignum.ToComplex(x, f.prec)
}

func (f BigComplex) IsZero(a *bignum.Complex) bool {
	return a.IsZero()
}

func (f BigComplex) Add(a, b *bignum.Complex) *bignum.Complex {
	return f.Zero().Add(a, b)
}

func (f BigComplex) Sub(a, b *bignum.Complex) *bignum.Complex {
	return f.Zero().Sub(a, b)
}

func (f BigComplex) Mul(a, b *bignum.Complex) *bignum.Complex {
	c := f.Zero()
	bignum.NewComplexMultiplier().Mul(a, b, c)
	return c
}

func (f BigComplex) Quo(a, b *bignum.Complex) *bignum.Complex {
	c := f.Zero()
	bignum.NewComplexMultiplier().Quo(a, b, c)
	return c
}

func (f BigComplex) Neg(a *bignum.Complex) *bignum.Complex {
	return f.Zero().Neg(a)
}

func (f BigComplex) Sqrt(a *bignum.Complex) (*bignum.Complex, error) {
	return f.Zero().Sqrt(f.round(a)), nil
}

func (f BigComplex) Cbrt(a *bignum.Complex) (*bignum.Complex, error) {
	return f.Zero().Cbrt(f.round(a)), nil
}

func (f BigComplex) Abs(a *bignum.Complex) float64 {
	abs, _ := a.Abs().Float64()
	return abs
}

// Parse accepts a real decimal literal, parsed at the precision of the field,
// or a complex literal as accepted by strconv.ParseComplex.
func (f BigComplex) Parse(s string) (*bignum.Complex, error) {

	s = strings.TrimSpace(s)

	if x, _, err := big.ParseFloat(s, 10, f.prec, big.ToNearestEven); err == nil {
		return bignum.ToComplex(x, f.prec), nil
	}

	c, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return nil, fmt.Errorf("strconv.ParseComplex: %w", err)
	}

	return bignum.ToComplex(c, f.prec), nil
}

func (f BigComplex) Format(a *bignum.Complex) string {
	return a.String()
}

// round returns a at the precision of the field.
func (f BigComplex) round(a *bignum.Complex) *bignum.Complex {
	if a.Prec() == f.prec {
		return a
	}
	return bignum.ToComplex(a, f.prec)
}
