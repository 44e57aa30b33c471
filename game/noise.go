package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// MaxNoise bounds the per-round corruption probability: a revealed move can
// never be more likely flipped than kept.
const MaxNoise = 0.5

// Flip returns m corrupted with probability prob, using one independent
// uniform draw from rng. prob must lie in [0, MaxNoise].
func Flip(rng *rand.Rand, m Move, prob float64) Move {
	if prob < 0 || prob > MaxNoise {
		panic(fmt.Sprintf("noise probability %v outside [0, %v]", prob, MaxNoise))
	}
	if rng.Float64() < prob {
		return m.Opposite()
	}
	return m
}
