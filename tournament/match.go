package tournament

import (
	"golang.org/x/exp/rand"

	"dilemma/game"
	"dilemma/strategy"
)

// PlayMatch runs params.Rounds independent rounds between s1 and s2 and
// returns both sides' summed scores. Each round draws a fresh noise level
// uniformly in [0, MaxNoise); no history survives between rounds.
func PlayMatch(rng *rand.Rand, s1, s2 strategy.Strategy, params Params) (int, int) {
	var total1, total2 int
	for r := 0; r < params.Rounds; r++ {
		noise := rng.Float64() * game.MaxNoise
		sc1, sc2 := PlayRound(rng, s1, s2, params.Turns, noise)
		total1 += sc1
		total2 += sc2
	}
	return total1, total2
}
