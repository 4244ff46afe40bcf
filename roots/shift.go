package roots

import (
	"github.com/tuneinsight/polyroots/field"
)

// Shift returns the coefficients of p(x + s), given the coefficients of p(x)
// in ascending order of degree. The output has the same length as the input
// and the input is not modified.
func Shift[T any](f field.Field[T], coeffs []T, s T) (shifted []T) {

	n := len(coeffs)

	shifted = make([]T, n)
	for i := range shifted {
		shifted[i] = f.Zero()
	}

	if n == 0 {
		return
	}

	// pows[i] = s^i
	pows := make([]T, n)
	pows[0] = f.FromInt(1)
	for i := 1; i < n; i++ {
		pows[i] = f.Mul(pows[i-1], s)
	}

	// c_i * (x + s)^i = sum_k c_i * C(i, k) * s^{i-k} * x^k
	for i, row := range Binomials(n) {
		for k, binom := range row {
			term := f.Mul(coeffs[i], f.Mul(f.FromInt(binom), pows[i-k]))
			shifted[k] = f.Add(shifted[k], term)
		}
	}

	return
}
