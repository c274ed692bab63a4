// Package dice wraps the single seedable random source a session threads
// through every probabilistic decision. Nothing in the game reads the global
// math/rand state.
package dice

import (
	"math/rand"
	"time"
)

// New returns a source seeded with seed. A zero seed picks one from the clock.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Uniform returns a float in [lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// Between returns an int in [lo, hi], both ends inclusive.
func Between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Chance reports whether a roll in [0,1) lands under p.
func Chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// Pick returns a uniformly chosen element. It panics on an empty slice.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// Shuffle permutes items in place.
func Shuffle[T any](rng *rand.Rand, items []T) {
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
}
