package roots

import (
	"fmt"

	"github.com/tuneinsight/polyroots/field"
)

// MaxDegree is the largest degree for which a closed-form solver is available.
const MaxDegree = 4

// Solver computes the roots of polynomials of degree at most [MaxDegree]
// over the numeric type T using Cardano's and Ferrari's formulas.
//
// The number of roots returned depends on the degree once trailing zero
// coefficients are removed: a nonzero constant has no root, linear and
// quadratic polynomials have 1 and 2 roots, a cubic has a single root
// (the two others are not computed) and a quartic has 4 roots.
// Roots are not sorted.
//
// A Solver holds no state other than its field and is safe for concurrent use.
type Solver[T any] struct {
	field field.Field[T]
}

// NewSolver returns a new Solver over the field f.
func NewSolver[T any](f field.Field[T]) *Solver[T] {
	return &Solver[T]{field: f}
}

// SolveFloat64 solves the polynomial with the given float64 coefficients,
// given in ascending order of degree, over the reals.
func SolveFloat64(coeffs ...float64) ([]float64, error) {
	return NewSolver[float64](field.NewReal[float64]()).Solve(coeffs)
}

// SolveComplex128 solves the polynomial with the given complex128 coefficients,
// given in ascending order of degree, over the complex numbers.
func SolveComplex128(coeffs ...complex128) ([]complex128, error) {
	return NewSolver[complex128](field.NewComplex()).Solve(coeffs)
}

// Solve returns the roots of the polynomial whose coefficients are given in
// ascending order of degree, i.e. coeffs[i] is the coefficient of x^i.
// Trailing zero coefficients are ignored.
//
// Solve returns an error matching [ErrEmptyPolynomial] if all coefficients are zero,
// [ErrUnsupportedDegree] if the degree is greater than [MaxDegree] and [ErrDomain]
// if an intermediate value cannot be computed.
func (s Solver[T]) Solve(coeffs []T) (roots []T, err error) {
	if roots, err = s.solve(coeffs); err != nil {
		return nil, fmt.Errorf("cannot Solve: %w", err)
	}
	return
}

func (s Solver[T]) solve(coeffs []T) ([]T, error) {

	f := s.field

	n := len(coeffs)
	for n > 0 && f.IsZero(coeffs[n-1]) {
		n--
	}

	switch n {
	case 0:
		return nil, ErrEmptyPolynomial
	case 1:
		return []T{}, nil
	}

	lead := coeffs[n-1]

	monic := make([]T, n-1)
	for i := range monic {
		monic[i] = f.Quo(coeffs[i], lead)
	}

	return s.solveNormalized(monic)
}

// solveNormalized solves x^n + monic[n-1] x^{n-1} + ... + monic[0] by shifting
// the variable so that the x^{n-1} term vanishes.
func (s Solver[T]) solveNormalized(monic []T) ([]T, error) {

	f := s.field

	n := len(monic)

	shift := f.Neg(f.Quo(monic[n-1], f.FromInt(n)))

	full := make([]T, n+1)
	copy(full, monic)
	full[n] = f.FromInt(1)

	depressed := Shift(f, full, shift)[:n-1]

	roots, err := s.solveDepressed(depressed)
	if err != nil {
		return nil, err
	}

	for i := range roots {
		roots[i] = f.Add(roots[i], shift)
	}

	return roots, nil
}

// solveDepressed solves x^n + coeffs[n-2] x^{n-2} + ... + coeffs[0] with n = len(coeffs)+1.
func (s Solver[T]) solveDepressed(coeffs []T) ([]T, error) {
	switch degree := len(coeffs) + 1; degree {
	case 1:
		return []T{s.field.Zero()}, nil
	case 2:
		return s.solveQuadratic(coeffs[0])
	case 3:
		return s.solveCubic(coeffs[1], coeffs[0])
	case 4:
		return s.solveQuartic(coeffs[2], coeffs[1], coeffs[0])
	default:
		return nil, &UnsupportedDegreeError{Degree: degree}
	}
}

// solveQuadratic solves x^2 + c.
func (s Solver[T]) solveQuadratic(c T) ([]T, error) {

	f := s.field

	t, err := f.Sqrt(f.Neg(c))
	if err != nil {
		return nil, fmt.Errorf("quadratic: %w", err)
	}

	return []T{f.Neg(t), t}, nil
}

// solveCubic returns one root of x^3 + p x + q with Cardano's formula.
func (s Solver[T]) solveCubic(p, q T) ([]T, error) {

	f := s.field

	// disc = q^2/4 + p^3/27
	half := f.Quo(q, f.FromInt(2))
	disc := f.Add(f.Mul(half, half), f.Quo(f.Mul(p, f.Mul(p, p)), f.FromInt(27)))

	sqrt, err := f.Sqrt(disc)
	if err != nil {
		return nil, fmt.Errorf("cubic: %w", err)
	}

	// u^3 = -q/2 - sqrt(disc), or -q/2 + sqrt(disc) if it has a larger magnitude.
	// Either sign yields a root and the larger one is nonzero unless p = q = 0.
	radicand := f.Sub(f.Neg(half), sqrt)
	if other := f.Add(f.Neg(half), sqrt); f.IsZero(radicand) || f.Abs(other) > f.Abs(radicand) {
		radicand = other
	}

	u, err := f.Cbrt(radicand)
	if err != nil {
		return nil, fmt.Errorf("cubic: %w", err)
	}

	// p = q = 0: triple root.
	if f.IsZero(u) {
		return []T{f.Zero()}, nil
	}

	return []T{f.Sub(u, f.Quo(p, f.Mul(f.FromInt(3), u)))}, nil
}

// solveQuartic returns the roots of x^4 + c x^2 + d x + e with Ferrari's method.
func (s Solver[T]) solveQuartic(c, d, e T) ([]T, error) {

	f := s.field

	if f.IsZero(d) {
		return s.solveBiquadratic(c, e)
	}

	// Resolvent cubic: t^3 + 2c t^2 + (c^2 - 4e) t - d^2.
	resolvent := []T{
		f.Neg(f.Mul(d, d)),
		f.Sub(f.Mul(c, c), f.Mul(f.FromInt(4), e)),
		f.Mul(f.FromInt(2), c),
		f.FromInt(1),
	}

	ts, err := s.solve(resolvent)
	if err != nil {
		return nil, fmt.Errorf("quartic resolvent: %w", err)
	}

	p, err := f.Sqrt(s.resolventRoot(resolvent, ts[0]))
	if err != nil {
		return nil, fmt.Errorf("quartic: %w", err)
	}

	if f.IsZero(p) {
		return nil, fmt.Errorf("quartic: vanishing resolvent root with d != 0: %w", ErrDomain)
	}

	// x^4 + c x^2 + d x + e = (x^2 + p x + (c + p^2 - d/p)/2) * (x^2 - p x + (c + p^2 + d/p)/2)
	base := f.Add(c, f.Mul(p, p))
	dp := f.Quo(d, p)
	two := f.FromInt(2)
	twoP := f.Mul(two, p)

	lo, err := s.solve([]T{f.Sub(base, dp), twoP, two})
	if err != nil {
		return nil, fmt.Errorf("quartic: %w", err)
	}

	hi, err := s.solve([]T{f.Add(base, dp), f.Neg(twoP), two})
	if err != nil {
		return nil, fmt.Errorf("quartic: %w", err)
	}

	return append(lo, hi...), nil
}

// resolventRoot returns the root of largest magnitude of the monic cubic
// resolvent that has a square root in the field, among t0 and the roots of
// resolvent / (t - t0). A small t gives a small p and d/p loses accuracy,
// which happens for t0 near zero when the quartic has two double roots.
func (s Solver[T]) resolventRoot(resolvent []T, t0 T) T {

	f := s.field

	// resolvent / (t - t0) = t^2 + b t + c
	b := f.Add(resolvent[2], t0)
	c := f.Add(resolvent[1], f.Mul(t0, b))

	others, err := s.solve([]T{c, b, f.FromInt(1)})
	if err != nil {
		return t0
	}

	best := t0
	_, err = f.Sqrt(t0)
	valid := err == nil

	for _, t := range others {
		if _, err := f.Sqrt(t); err != nil {
			continue
		}
		if !valid || f.Abs(t) > f.Abs(best) {
			best, valid = t, true
		}
	}

	return best
}

// solveBiquadratic returns the roots of x^4 + c x^2 + e as the square roots
// of the roots of y^2 + c y + e.
func (s Solver[T]) solveBiquadratic(c, e T) ([]T, error) {

	f := s.field

	ys, err := s.solve([]T{e, c, f.FromInt(1)})
	if err != nil {
		return nil, fmt.Errorf("biquadratic: %w", err)
	}

	roots := make([]T, 0, 2*len(ys))
	for _, y := range ys {
		x, err := f.Sqrt(y)
		if err != nil {
			return nil, fmt.Errorf("biquadratic: %w", err)
		}
		roots = append(roots, f.Neg(x), x)
	}

	return roots, nil
}
