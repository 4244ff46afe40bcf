package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/tuneinsight/polyroots/utils"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valide types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valide types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Pow returns x^y. x must be strictly positive.
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}

// Cbrt returns the real cube root of x with the precision of x.
// Negative inputs yield the negative real root.
func Cbrt(x *big.Float) (cbrt *big.Float) {

	if x.Sign() == 0 {
		return new(big.Float).SetPrec(x.Prec())
	}

	third := new(big.Float).SetPrec(x.Prec()).SetInt64(1)
	third.Quo(third, NewFloat(3, x.Prec()))

	abs := new(big.Float).Abs(x)
	cbrt = Pow(abs, third)

	if x.Sign() < 0 {
		cbrt.Neg(cbrt)
	}

	return
}

// Hypot returns sqrt(a^2 + b^2) with the largest precision of a and b.
func Hypot(a, b *big.Float) (h *big.Float) {
	prec := utils.Max(a.Prec(), b.Prec())
	h = new(big.Float).SetPrec(prec).Mul(a, a)
	h.Add(h, new(big.Float).SetPrec(prec).Mul(b, b))
	return h.Sqrt(h)
}
