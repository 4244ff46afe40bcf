package sampling

import (
	"encoding/binary"
	"fmt"
)

// RandUint64 returns a uniform value in [0, 2^64) read from prng.
func RandUint64(prng PRNG) uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := prng.Read(b); err != nil {
		// Sanity check, this error should not happen.
		panic(fmt.Errorf("prng.Read: %w", err))
	}
	return binary.BigEndian.Uint64(b)
}

// RandFloat64 returns a random float between min and max.
func RandFloat64(prng PRNG, min, max float64) float64 {
	f := float64(RandUint64(prng)>>11) / (1 << 53)
	return min + f*(max-min)
}

// RandComplex128 returns a random complex with the real and imaginary part between min and max.
func RandComplex128(prng PRNG, min, max float64) complex128 {
	return complex(RandFloat64(prng, min, max), RandFloat64(prng, min, max))
}

// RandInt returns a uniform integer in [min, max].
func RandInt(prng PRNG, min, max int) int {
	if max < min {
		panic(fmt.Errorf("invalid range: max=%d < min=%d", max, min))
	}
	return min + int(RandUint64(prng)%uint64(max-min+1))
}
