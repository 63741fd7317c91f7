package ai

import (
	"math/rand"
	"time"
)

// Source - randomness used by the Easy and Medium policies. Intn returns a value in [0, n).
type Source interface {
	Intn(n int) int
}

// NewRandomSource - seeded source, seed 0 seeds from the clock.
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) //nolint: gosec // game randomness, not security
}
