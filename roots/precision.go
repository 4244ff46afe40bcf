package roots

import (
	"fmt"
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polyroots/field"
)

// MinLog2Err is the log2 error reported for an exact root.
const MinLog2Err = -1074

// PrecisionStats is a struct storing statistics about the log2 residuals
// (see [Residual]) of a set of roots.
type PrecisionStats struct {
	MINLog2Err float64
	MAXLog2Err float64
	AVGLog2Err float64
	MEDLog2Err float64
	STDLog2Err float64

	Count int
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬─────────┐
│    Log2 │ ERR     │
├─────────┼─────────┤
│MIN      │ %7.2f │
│MAX      │ %7.2f │
│AVG      │ %7.2f │
│MED      │ %7.2f │
│STD      │ %7.2f │
├─────────┼─────────┤
│Roots    │ %7d │
└─────────┴─────────┘
`,
		prec.MINLog2Err,
		prec.MAXLog2Err,
		prec.AVGLog2Err,
		prec.MEDLog2Err,
		prec.STDLog2Err,
		prec.Count)
}

// GetPrecisionStats generates a [PrecisionStats] struct from the coefficients of a polynomial and its roots.
func GetPrecisionStats[T any](f field.Field[T], coeffs, roots []T) (prec PrecisionStats) {
	return NewPrecisionStats(Residuals(f, coeffs, roots))
}

// NewPrecisionStats generates a [PrecisionStats] struct from a list of residuals.
func NewPrecisionStats(residuals []float64) (prec PrecisionStats) {

	if len(residuals) == 0 {
		return
	}

	log2Err := make([]float64, len(residuals))
	for i, r := range residuals {
		log2Err[i] = math.Max(math.Log2(r), MinLog2Err)
	}

	prec.Count = len(residuals)

	// Errors are only returned on empty inputs.
	prec.MINLog2Err, _ = stats.Min(log2Err)
	prec.MAXLog2Err, _ = stats.Max(log2Err)
	prec.AVGLog2Err, _ = stats.Mean(log2Err)
	prec.MEDLog2Err, _ = stats.Median(log2Err)
	prec.STDLog2Err, _ = stats.StandardDeviation(log2Err)

	return
}

// VerifyRoots checks that every root has a log2 residual of at most log2MaxErr.
func VerifyRoots[T any](f field.Field[T], coeffs, roots []T, log2MaxErr float64, printPrecisionStats bool, t *testing.T) {

	precStats := GetPrecisionStats(f, coeffs, roots)

	if printPrecisionStats {
		t.Log(precStats.String())
	}

	require.LessOrEqual(t, precStats.MAXLog2Err, log2MaxErr)
}
