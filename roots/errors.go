package roots

import (
	"errors"
	"fmt"

	"github.com/tuneinsight/polyroots/field"
)

var (
	// ErrEmptyPolynomial is returned when every coefficient of the input is zero.
	ErrEmptyPolynomial = errors.New("empty polynomial: all coefficients are zero")

	// ErrUnsupportedDegree is matched by every [UnsupportedDegreeError].
	ErrUnsupportedDegree = errors.New("unsupported degree")

	// ErrDomain is returned when a degenerate intermediate value prevents the
	// closed-form evaluation, or when the numeric type cannot represent an
	// intermediate root (e.g. the square root of a negative real).
	ErrDomain = field.ErrDomain
)

// UnsupportedDegreeError reports a polynomial whose degree has no closed-form solver.
type UnsupportedDegreeError struct {
	Degree int
}

func (e *UnsupportedDegreeError) Error() string {
	return fmt.Sprintf("%s: %d (must be between 1 and 4)", ErrUnsupportedDegree, e.Degree)
}

func (e *UnsupportedDegreeError) Is(target error) bool {
	return target == ErrUnsupportedDegree
}
