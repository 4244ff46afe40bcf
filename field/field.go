// Package field defines the arithmetic a closed-form polynomial solver needs
// over its coefficient type, together with real, complex and arbitrary
// precision complex implementations.
package field

import (
	"errors"
)

// ErrDomain is returned when an operation is evaluated outside of the domain
// in which the numeric type can represent its result, for example the square
// root of a negative value over the reals.
var ErrDomain = errors.New("domain error")

// Field is the set of operations over T used by the solver.
// Implementations must not mutate their operands.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// FromInt converts a small integer.
	FromInt(x int) T
	// IsZero reports whether a is exactly the additive identity.
	IsZero(a T) bool

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	// Quo returns a/b. Callers are responsible for b being nonzero.
	Quo(a, b T) T
	Neg(a T) T

	// Sqrt returns a square root of a, or an error wrapping ErrDomain
	// if a has no square root in T.
	Sqrt(a T) (T, error)
	// Cbrt returns a cube root of a, or an error wrapping ErrDomain
	// if a has no cube root in T.
	Cbrt(a T) (T, error)

	// Abs returns the magnitude of a as a float64.
	Abs(a T) float64
}

// Codec converts values of T from and to their textual representation.
type Codec[T any] interface {
	Parse(s string) (T, error)
	Format(a T) string
}
