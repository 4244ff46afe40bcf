package roots

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Names of the fields a [Parameters] can select.
const (
	Float32    = "float32"
	Float64    = "float64"
	Complex128 = "complex128"
	BigComplex = "bigcomplex"
)

// DefaultLogPrec is the precision in bits used by the [BigComplex] field
// when none is specified.
const DefaultLogPrec = 256

// ParametersLiteral is a literal representation of solver parameters.
// It has public fields and is used to express unchecked user-defined parameters
// literally into Go programs or JSON files. The [NewParametersFromLiteral]
// function is used to generate the actual checked parameters from the literal
// representation.
//
// Field selects the numeric type and must be one of float32, float64,
// complex128 or bigcomplex. LogPrec is the precision in bits of the
// bigcomplex field and must be left to zero for the other fields.
type ParametersLiteral struct {
	Field   string
	LogPrec uint `json:",omitempty"`
}

// Parameters represents a parameter set for a polynomial solver. Its fields are private and
// immutable. See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	field   string
	logPrec uint
}

// NewParametersFromLiteral instantiate a set of parameters from a [ParametersLiteral].
// It returns an error if the field is unknown or if a precision is set for a fixed precision field.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	switch pl.Field {
	case Float32, Float64, Complex128:
		if pl.LogPrec != 0 {
			return Parameters{}, fmt.Errorf("roots.NewParametersFromLiteral: LogPrec cannot be set for field %q", pl.Field)
		}
	case BigComplex:
		if pl.LogPrec == 0 {
			pl.LogPrec = DefaultLogPrec
		}
	case "":
		return Parameters{}, fmt.Errorf("roots.NewParametersFromLiteral: Field is empty")
	default:
		return Parameters{}, fmt.Errorf("roots.NewParametersFromLiteral: invalid Field %q, must be %s, %s, %s or %s", pl.Field, Float32, Float64, Complex128, BigComplex)
	}

	return Parameters{field: pl.Field, logPrec: pl.LogPrec}, nil
}

// MustNewParametersFromLiteral is identical to [NewParametersFromLiteral] but panics on error.
func MustNewParametersFromLiteral(pl ParametersLiteral) Parameters {
	params, err := NewParametersFromLiteral(pl)
	if err != nil {
		panic(err)
	}
	return params
}

// FieldName returns the name of the field.
func (p Parameters) FieldName() string {
	return p.field
}

// LogPrec returns the precision in bits of the field, which is 0 for fixed precision fields.
func (p Parameters) LogPrec() uint {
	return p.logPrec
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Field:   p.field,
		LogPrec: p.logPrec,
	}
}

// Equal returns true if the receiver and other are the same parameter set.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
