package field

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
)

// Complex is the field of complex numbers represented by complex128.
// Sqrt and Cbrt are total and return principal roots.
type Complex struct{}

// NewComplex returns the complex128 field.
func NewComplex() Complex {
	return Complex{}
}

func (Complex) Zero() complex128 {
	return 0
}

func (Complex) FromInt(x int) complex128 {
	return complex(float64(x), 0)
}

func (Complex) IsZero(a complex128) bool {
	return a == 0
}

func (Complex) Add(a, b complex128) complex128 {
	return a + b
}

func (Complex) Sub(a, b complex128) complex128 {
	return a - b
}

func (Complex) Mul(a, b complex128) complex128 {
	return a * b
}

func (Complex) Quo(a, b complex128) complex128 {
	return a / b
}

func (Complex) Neg(a complex128) complex128 {
	return -a
}

func (Complex) Sqrt(a complex128) (complex128, error) {
	return cmplx.Sqrt(a), nil
}

// Cbrt returns the principal cube root of a, taking the real cube root of the
// modulus and a third of the phase.
func (Complex) Cbrt(a complex128) (complex128, error) {
	if a == 0 {
		return 0, nil
	}
	if imag(a) == 0 && real(a) > 0 {
		return complex(math.Cbrt(real(a)), 0), nil
	}
	return cmplx.Rect(math.Cbrt(cmplx.Abs(a)), cmplx.Phase(a)/3), nil
}

func (Complex) Abs(a complex128) float64 {
	return cmplx.Abs(a)
}

func (Complex) Parse(s string) (complex128, error) {
	c, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseComplex: %w", err)
	}
	return c, nil
}

func (Complex) Format(a complex128) string {
	if imag(a) == 0 {
		return strconv.FormatFloat(real(a), 'g', -1, 64)
	}
	return strconv.FormatComplex(a, 'g', -1, 128)
}
