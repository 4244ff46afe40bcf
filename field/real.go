package field

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Real is the field of real numbers represented by float32 or float64.
// Sqrt is partial: negative operands return ErrDomain.
type Real[F constraints.Float] struct{}

// NewReal returns the real field over F.
func NewReal[F constraints.Float]() Real[F] {
	return Real[F]{}
}

func (Real[F]) Zero() F {
	return 0
}

func (Real[F]) FromInt(x int) F {
	return F(x)
}

func (Real[F]) IsZero(a F) bool {
	return a == 0
}

func (Real[F]) Add(a, b F) F {
	return a + b
}

func (Real[F]) Sub(a, b F) F {
	return a - b
}

func (Real[F]) Mul(a, b F) F {
	return a * b
}

func (Real[F]) Quo(a, b F) F {
	return a / b
}

func (Real[F]) Neg(a F) F {
	return -a
}

func (Real[F]) Sqrt(a F) (F, error) {
	if a < 0 {
		return 0, fmt.Errorf("cannot Sqrt: %v < 0: %w", a, ErrDomain)
	}
	return F(math.Sqrt(float64(a))), nil
}

// Cbrt returns the real cube root of a, which is defined for every a.
func (Real[F]) Cbrt(a F) (F, error) {
	return F(math.Cbrt(float64(a))), nil
}

func (Real[F]) Abs(a F) float64 {
	return math.Abs(float64(a))
}

func (r Real[F]) Parse(s string) (F, error) {
	f, err := strconv.ParseFloat(s, r.bitSize())
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseFloat: %w", err)
	}
	return F(f), nil
}

func (r Real[F]) Format(a F) string {
	return strconv.FormatFloat(float64(a), 'g', -1, r.bitSize())
}

func (Real[F]) bitSize() int {
	var zero F
	if _, ok := any(zero).(float32); ok {
		return 32
	}
	return 64
}
