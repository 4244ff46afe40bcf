package roots

import (
	"github.com/tuneinsight/polyroots/field"
)

// Evaluate returns p(x) where coeffs are the coefficients of p in ascending order of degree.
func Evaluate[T any](f field.Field[T], coeffs []T, x T) (y T) {

	n := len(coeffs)

	if n == 0 {
		return f.Zero()
	}

	y = coeffs[n-1]
	for i := n - 2; i >= 0; i-- {
		y = f.Add(f.Mul(y, x), coeffs[i])
	}

	return
}

// Residual returns |p(x)| / sum_i |c_i| |x|^i, the backward error of x as a root of p.
// It is 0 if both the numerator and the denominator vanish.
func Residual[T any](f field.Field[T], coeffs []T, x T) float64 {

	num := f.Abs(Evaluate(f, coeffs, x))

	var den, pow float64 = 0, 1
	ax := f.Abs(x)
	for i := range coeffs {
		den += f.Abs(coeffs[i]) * pow
		pow *= ax
	}

	if den == 0 {
		return num
	}

	return num / den
}

// Residuals returns the [Residual] of each root.
func Residuals[T any](f field.Field[T], coeffs, roots []T) (res []float64) {
	res = make([]float64, len(roots))
	for i := range roots {
		res[i] = Residual(f, coeffs, roots[i])
	}
	return
}
