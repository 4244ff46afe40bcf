package bignum

import (
	"fmt"
	"math/big"
	"math/cmplx"

	"github.com/tuneinsight/polyroots/utils"
)

// Complex is a type for arbitrary precision complex number
type Complex [2]*big.Float

// NewComplex creates a new arbitrary precision complex number
func NewComplex() (c *Complex) {
	return &Complex{
		new(big.Float),
		new(big.Float),
	}
}

// ToComplex takes a complex128, float64, int, int64, uint64, *big.Int, *big.Float or *Complex and returns a *Complex set to the given precision.
func ToComplex(value interface{}, prec uint) (cmplx *Complex) {

	cmplx = new(Complex)

	switch value := value.(type) {
	case complex128:
		cmplx[0] = new(big.Float).SetPrec(prec).SetFloat64(real(value))
		cmplx[1] = new(big.Float).SetPrec(prec).SetFloat64(imag(value))
	case float64:
		cmplx[0] = new(big.Float).SetPrec(prec).SetFloat64(value)
		cmplx[1] = new(big.Float).SetPrec(prec)
	case int:
		cmplx[0] = new(big.Float).SetPrec(prec).SetInt64(int64(value))
		cmplx[1] = new(big.Float).SetPrec(prec)
	case int64:
		cmplx[0] = new(big.Float).SetPrec(prec).SetInt64(value)
		cmplx[1] = new(big.Float).SetPrec(prec)
	case uint64:
		return ToComplex(new(big.Int).SetUint64(value), prec)
	case *big.Float:
		cmplx[0] = new(big.Float).SetPrec(prec).Set(value)
		cmplx[1] = new(big.Float).SetPrec(prec)
	case *big.Int:
		cmplx[0] = new(big.Float).SetPrec(prec).SetInt(value)
		cmplx[1] = new(big.Float).SetPrec(prec)
	case *Complex:
		cmplx[0] = new(big.Float).SetPrec(prec).Set(value[0])
		cmplx[1] = new(big.Float).SetPrec(prec).Set(value[1])
	default:
		panic(fmt.Errorf("invalid value.(type): must be int, int64, uint64, float64, complex128, *big.Int, *big.Float or *Complex but is %T", value))
	}

	return
}

func (c Complex) IsReal() bool {
	return c[1] == nil || c[1].Sign() == 0
}

// IsZero returns true if both the real and imaginary parts are zero.
func (c Complex) IsZero() bool {
	return c[0].Sign() == 0 && c.IsReal()
}

// Set sets an arbitrary precision complex number
func (c *Complex) Set(a *Complex) *Complex {
	c[0].Set(a[0])
	c[1].Set(a[1])
	return c
}

func (c *Complex) Prec() uint {
	return utils.Max(c[0].Prec(), c[1].Prec())
}

func (c *Complex) SetPrec(prec uint) *Complex {
	c[0].SetPrec(prec)
	c[1].SetPrec(prec)
	return c
}

// Clone returns a new copy of the target arbitrary precision complex number
func (c *Complex) Clone() *Complex {
	return &Complex{new(big.Float).Set(c[0]), new(big.Float).Set(c[1])}
}

// Real returns the real part as a big.Float
func (c *Complex) Real() *big.Float {
	return c[0]
}

// Imag returns the imaginary part as a big.Float
func (c *Complex) Imag() *big.Float {
	return c[1]
}

// Complex128 returns the arbitrary precision complex number as a complex128
func (c *Complex) Complex128() complex128 {

	real, _ := c[0].Float64()
	imag, _ := c[1].Float64()

	return complex(real, imag)
}

// Abs returns the modulus of c.
func (c *Complex) Abs() *big.Float {
	return Hypot(c[0], c[1])
}

func (c *Complex) String() string {
	if c.IsReal() {
		return c[0].Text('g', -1)
	}
	im := c[1].Text('g', -1)
	if c[1].Sign() >= 0 {
		im = "+" + im
	}
	return fmt.Sprintf("(%s%si)", c[0].Text('g', -1), im)
}

// Add adds two arbitrary precision complex numbers together
func (c *Complex) Add(a, b *Complex) *Complex {
	c[0].Add(a[0], b[0])
	c[1].Add(a[1], b[1])
	return c
}

// Sub subtracts two arbitrary precision complex numbers together
func (c *Complex) Sub(a, b *Complex) *Complex {
	c[0].Sub(a[0], b[0])
	c[1].Sub(a[1], b[1])
	return c
}

// Neg negates a and writes the result on c.
func (c *Complex) Neg(a *Complex) *Complex {
	c[0].Neg(a[0])
	c[1].Neg(a[1])
	return c
}

// Sqrt sets c to the principal square root of a and returns c.
// The branch cut lies along the negative real axis, which is mapped
// onto the positive imaginary axis.
func (c *Complex) Sqrt(a *Complex) *Complex {

	prec := a.Prec()

	if a.IsZero() {
		c[0].SetPrec(prec).SetInt64(0)
		c[1].SetPrec(prec).SetInt64(0)
		return c
	}

	// t = sqrt((|a| + |re(a)|)/2) is computed without cancellation,
	// the other component is recovered as |im(a)|/(2t).
	t := new(big.Float).SetPrec(prec).Abs(a[0])
	t.Add(t, a.Abs())
	t.SetMantExp(t, -1)
	t.Sqrt(t)

	u := new(big.Float).SetPrec(prec).Abs(a[1])
	u.Quo(u, t)
	u.SetMantExp(u, -1)

	re, im := t, u
	if a[0].Sign() < 0 {
		re, im = u, t
	}

	if a[1].Sign() < 0 {
		im.Neg(im)
	}

	c[0].SetPrec(prec).Set(re)
	c[1].SetPrec(prec).Set(im)

	return c
}

// Cbrt sets c to the principal cube root of a and returns c.
// Positive reals are mapped to their real cube root; any other value is
// refined by Newton iterations seeded with the complex128 principal root.
func (c *Complex) Cbrt(a *Complex) *Complex {

	prec := a.Prec()

	if a.IsZero() {
		c[0].SetPrec(prec).SetInt64(0)
		c[1].SetPrec(prec).SetInt64(0)
		return c
	}

	if a.IsReal() && a[0].Sign() > 0 {
		c[0].SetPrec(prec).Set(Cbrt(a[0]))
		c[1].SetPrec(prec).SetInt64(0)
		return c
	}

	// a = s * 2^{3k} with |s| in a range a complex128 can represent.
	var k int
	switch {
	case a[1].Sign() == 0:
		k = a[0].MantExp(nil) / 3
	case a[0].Sign() == 0:
		k = a[1].MantExp(nil) / 3
	default:
		k = utils.Max(a[0].MantExp(nil), a[1].MantExp(nil)) / 3
	}

	s := &Complex{
		new(big.Float).SetPrec(prec).SetMantExp(a[0], -3*k),
		new(big.Float).SetPrec(prec).SetMantExp(a[1], -3*k),
	}

	w := ToComplex(cmplx.Pow(s.Complex128(), 1.0/3), prec)

	mul := NewComplexMultiplier()
	tmp := ToComplex(0, prec)
	three := ToComplex(3, prec)

	// Each step doubles the number of correct bits of the 53-bit seed.
	for bits := 48; ; bits <<= 1 {

		// w = (2w + s/w^2)/3
		mul.Mul(w, w, tmp)
		mul.Quo(s, tmp, tmp)
		tmp.Add(tmp, w)
		tmp.Add(tmp, w)
		mul.Quo(tmp, three, w)

		if bits > int(prec)+8 {
			break
		}
	}

	c[0].SetPrec(prec).SetMantExp(w[0], k)
	c[1].SetPrec(prec).SetMantExp(w[1], k)

	return c
}

// ComplexMultiplier is a struct for the multiplication or division of two arbitrary precision complex numbers
type ComplexMultiplier struct {
	tmp0 *big.Float
	tmp1 *big.Float
	tmp2 *big.Float
	tmp3 *big.Float
}

// NewComplexMultiplier creates a new ComplexMultiplier
func NewComplexMultiplier() (cEval *ComplexMultiplier) {
	cEval = new(ComplexMultiplier)
	cEval.tmp0 = new(big.Float)
	cEval.tmp1 = new(big.Float)
	cEval.tmp2 = new(big.Float)
	cEval.tmp3 = new(big.Float)
	return
}

// Mul evaluates c = a * b.
// c may alias a or b.
func (cEval *ComplexMultiplier) Mul(a, b, c *Complex) {

	if a.IsReal() && b.IsReal() {
		c[0].Mul(a[0], b[0])
		c[1].SetInt64(0)
		return
	}

	prec := utils.Max(a.Prec(), b.Prec())
	cEval.setPrec(prec)

	cEval.tmp0.Mul(a[0], b[0])
	cEval.tmp1.Mul(a[1], b[1])
	cEval.tmp2.Mul(a[0], b[1])
	cEval.tmp3.Mul(a[1], b[0])

	c[0].Sub(cEval.tmp0, cEval.tmp1)
	c[1].Add(cEval.tmp2, cEval.tmp3)
}

// Quo evaluates c = a / b.
// c may alias a or b.
func (cEval *ComplexMultiplier) Quo(a, b, c *Complex) {

	if b.IsReal() {
		cEval.tmp0.SetPrec(b.Prec()).Set(b[0])
		c[0].Quo(a[0], cEval.tmp0)
		c[1].Quo(a[1], cEval.tmp0)
		return
	}

	prec := utils.Max(a.Prec(), b.Prec())
	cEval.setPrec(prec)

	// tmp0 = (a[0] * b[0]) + (a[1] * b[1]) real part
	// tmp1 = (a[1] * b[0]) - (a[0] * b[1]) imag part
	// tmp2 = (b[0] * b[0]) + (b[1] * b[1]) denominator

	cEval.tmp0.Mul(a[0], b[0])
	cEval.tmp1.Mul(a[1], b[1])
	cEval.tmp2.Mul(a[1], b[0])
	cEval.tmp3.Mul(a[0], b[1])

	cEval.tmp0.Add(cEval.tmp0, cEval.tmp1)
	cEval.tmp1.Sub(cEval.tmp2, cEval.tmp3)

	cEval.tmp2.Mul(b[0], b[0])
	cEval.tmp3.Mul(b[1], b[1])
	cEval.tmp2.Add(cEval.tmp2, cEval.tmp3)

	c[0].Quo(cEval.tmp0, cEval.tmp2)
	c[1].Quo(cEval.tmp1, cEval.tmp2)
}

func (cEval *ComplexMultiplier) setPrec(prec uint) {
	cEval.tmp0.SetPrec(prec)
	cEval.tmp1.SetPrec(prec)
	cEval.tmp2.SetPrec(prec)
	cEval.tmp3.SetPrec(prec)
}
