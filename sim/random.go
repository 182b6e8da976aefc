package sim

import "math/rand"

// Random supplies uniform integers in [0, n).
type Random interface {
	Intn(n int) int
}

// NewRandom returns a seeded source; equal seeds give equal gap sequences.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}
