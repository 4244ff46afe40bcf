package roots

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinomials(t *testing.T) {

	require.Nil(t, Binomials(0))
	require.Nil(t, Binomials(-1))

	require.Equal(t, [][]int{
		{1},
		{1, 1},
		{1, 2, 1},
		{1, 3, 3, 1},
		{1, 4, 6, 4, 1},
	}, Binomials(5))

	// Each row sums to 2^k.
	for k, row := range Binomials(16) {
		var sum int
		for _, c := range row {
			sum += c
		}
		require.Equal(t, 1<<k, sum)
	}
}
