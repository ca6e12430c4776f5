package bomberman

import "math/rand/v2"

// Random is the source of randomness for map generation, powerup drops and
// enemy AI. *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	Float64() float64
	IntN(n int) int
}

// NewRandom returns a deterministic PCG-backed Random for the given seed.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0)) //#nosec G115 -- intentional conversion for RNG seeding
}
