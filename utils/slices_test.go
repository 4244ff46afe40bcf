package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxMin(t *testing.T) {
	require.Equal(t, 3, Max(1, 3))
	require.Equal(t, uint(7), Max(uint(7), uint(2)))
	require.Equal(t, -1.5, Min(-1.5, 2.0))
	require.Equal(t, "a", Min("b", "a"))
}

func TestSortSlice(t *testing.T) {
	s := []float64{2, -1, 1, -2}
	SortSlice(s)
	require.Equal(t, []float64{-2, -1, 1, 2}, s)
}

func TestMap(t *testing.T) {
	require.Equal(t, []float64{1, 4, 9}, Map([]int{1, 2, 3}, func(x int) float64 {
		return float64(x * x)
	}))
	require.Empty(t, Map([]int{}, func(x int) int { return x }))
}
