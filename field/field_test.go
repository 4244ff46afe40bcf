package field

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polyroots/utils/bignum"
)

func TestReal(t *testing.T) {

	t.Run("Float64/Arithmetic", func(t *testing.T) {
		f := NewReal[float64]()
		require.Equal(t, 5.0, f.Add(2, 3))
		require.Equal(t, -1.0, f.Sub(2, 3))
		require.Equal(t, 6.0, f.Mul(2, 3))
		require.Equal(t, 1.5, f.Quo(3, 2))
		require.Equal(t, -2.0, f.Neg(2))
		require.Equal(t, 7.0, f.FromInt(7))
		require.True(t, f.IsZero(f.Zero()))
		require.Equal(t, 2.5, f.Abs(-2.5))
	})

	t.Run("Float64/Roots", func(t *testing.T) {
		f := NewReal[float64]()

		sqrt, err := f.Sqrt(9)
		require.NoError(t, err)
		require.Equal(t, 3.0, sqrt)

		_, err = f.Sqrt(-1)
		require.ErrorIs(t, err, ErrDomain)

		cbrt, err := f.Cbrt(-8)
		require.NoError(t, err)
		require.InDelta(t, -2.0, cbrt, 1e-15)
	})

	t.Run("Float32/Codec", func(t *testing.T) {
		f := NewReal[float32]()

		x, err := f.Parse("0.1")
		require.NoError(t, err)
		require.Equal(t, float32(0.1), x)
		require.Equal(t, "0.1", f.Format(x))

		_, err = f.Parse("one")
		require.Error(t, err)
	})
}

func TestComplex(t *testing.T) {

	f := NewComplex()

	t.Run("Sqrt", func(t *testing.T) {
		sqrt, err := f.Sqrt(-4)
		require.NoError(t, err)
		require.Equal(t, complex(0, 2), sqrt)
	})

	t.Run("Cbrt", func(t *testing.T) {

		cbrt, err := f.Cbrt(0)
		require.NoError(t, err)
		require.True(t, f.IsZero(cbrt))

		for _, x := range []complex128{8, -8, complex(1, 1), complex(-3, -7)} {
			cbrt, err = f.Cbrt(x)
			require.NoError(t, err)
			require.InDelta(t, 0, cmplx.Abs(cbrt*cbrt*cbrt-x), 1e-13)
		}

		cbrt, err = f.Cbrt(27)
		require.NoError(t, err)
		require.Equal(t, complex(3, 0), cbrt)

		// Relative accuracy far from the unit circle, against a 128-bit reference.
		for _, x := range []complex128{complex(1e-200, -1e-200), complex(3e300, 7e299), complex(-2e-150, 5e-151), 1i} {
			cbrt, err = f.Cbrt(x)
			require.NoError(t, err)
			want := bignum.ToComplex(x, 128)
			want.Cbrt(want)
			require.InDelta(t, 0, cmplx.Abs(cbrt-want.Complex128())/cmplx.Abs(want.Complex128()), 2e-15, x)
		}
	})

	t.Run("Codec", func(t *testing.T) {
		x, err := f.Parse("1+2i")
		require.NoError(t, err)
		require.Equal(t, complex(1, 2), x)
		require.Equal(t, "(1+2i)", f.Format(x))
		require.Equal(t, "-3", f.Format(-3))
	})
}

func TestBigComplex(t *testing.T) {

	f := NewBigComplex(256)

	require.Panics(t, func() { NewBigComplex(0) })
	require.Equal(t, uint(256), f.Prec())

	t.Run("Arithmetic", func(t *testing.T) {
		a := bignum.ToComplex(complex(1, 2), 256)
		b := bignum.ToComplex(complex(3, -1), 256)

		require.Equal(t, complex(4, 1), f.Add(a, b).Complex128())
		require.Equal(t, complex(-2, 3), f.Sub(a, b).Complex128())
		require.Equal(t, complex(5, 5), f.Mul(a, b).Complex128())
		require.InDelta(t, 0, cmplx.Abs(f.Quo(a, b).Complex128()-complex(0.1, 0.7)), 1e-15)
		require.Equal(t, complex(-1, -2), f.Neg(a).Complex128())

		// Operands are left untouched.
		require.Equal(t, complex(1, 2), a.Complex128())
		require.Equal(t, complex(3, -1), b.Complex128())

		require.True(t, f.IsZero(f.Sub(a, a)))
		require.InDelta(t, math.Sqrt(5), f.Abs(a), 1e-15)
	})

	t.Run("Quo/Real", func(t *testing.T) {
		a := bignum.ToComplex(complex(6, -3), 256)
		require.Equal(t, complex(2, -1), f.Quo(a, f.FromInt(3)).Complex128())
	})

	t.Run("Sqrt", func(t *testing.T) {
		for _, x := range []complex128{-4, 4, complex(3, 4), complex(-3, -4), complex(0, 2)} {
			sqrt, err := f.Sqrt(bignum.ToComplex(x, 256))
			require.NoError(t, err)
			require.InDelta(t, 0, cmplx.Abs(sqrt.Complex128()-cmplx.Sqrt(x)), 1e-15, x)
		}
	})

	t.Run("Cbrt", func(t *testing.T) {

		two := f.FromInt(2)
		cbrt, err := f.Cbrt(two)
		require.NoError(t, err)

		// (2^{1/3})^3 - 2 vanishes far below float64 precision.
		cube := f.Mul(f.Mul(cbrt, cbrt), cbrt)
		residual, _ := f.Sub(cube, two).Abs().Float64()
		require.Less(t, residual, 1e-70)

		for _, x := range []complex128{-8, complex(1, 1), complex(-3, -7), complex(0, 1e-300), complex(1e300, 1e300)} {
			a := bignum.ToComplex(x, 256)
			cbrt, err = f.Cbrt(a)
			require.NoError(t, err)
			cube = f.Mul(f.Mul(cbrt, cbrt), cbrt)
			residual, _ = f.Sub(cube, a).Abs().Float64()
			require.Less(t, residual/cmplx.Abs(x), 1e-70, x)
		}
	})

	t.Run("Codec", func(t *testing.T) {
		x, err := f.Parse("0.1")
		require.NoError(t, err)
		require.True(t, x.IsReal())
		require.Equal(t, uint(256), x.Prec())

		x, err = f.Parse("1-2i")
		require.NoError(t, err)
		require.Equal(t, complex(1, -2), x.Complex128())
		require.Equal(t, "(1-2i)", f.Format(x))

		_, err = f.Parse("x")
		require.Error(t, err)
	})
}
