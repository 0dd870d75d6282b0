// Package dice provides the seeded random source behind every roll the rain
// makes: column lengths, fall speeds, glyph values and fade thresholds.
// A fixed seed replays the same animation.
package dice

import (
	"math/rand"
	"time"
)

// Roller handles dice rolling with a reproducible random source
type Roller struct {
	rng  *rand.Rand
	seed int64
}

// NewRoller creates a new Roller seeded with seed.
// A zero seed picks one from the current time; Seed reports the value used.
func NewRoller(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Roller{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the roller was built with
func (r *Roller) Seed() int64 {
	return r.seed
}

// Intn rolls a die with n faces numbered 0..n-1
func (r *Roller) Intn(n int) int {
	return r.rng.Intn(n)
}
