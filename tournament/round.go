package tournament

import (
	"golang.org/x/exp/rand"

	"dilemma/game"
	"dilemma/strategy"
)

// PlayRound plays turns encounters between s1 and s2 under one shared noise
// level and returns both sides' summed scores. Each turn both strategies
// decide from their own clean history and the other side's noisy history,
// then each revealed move is corrupted independently. The corrupted moves
// are what gets scored: noise changes payoffs, not just perception. A
// strategy never sees a corrupted version of its own past moves.
func PlayRound(rng *rand.Rand, s1, s2 strategy.Strategy, turns int, noise float64) (int, int) {
	own1 := make(strategy.History, 0, turns)
	own2 := make(strategy.History, 0, turns)
	noisy1 := make(strategy.History, 0, turns)
	noisy2 := make(strategy.History, 0, turns)

	var score1, score2 int
	for t := 0; t < turns; t++ {
		m1 := s1.Play(own1, noisy2)
		m2 := s2.Play(own2, noisy1)
		n1 := game.Flip(rng, m1, noise)
		n2 := game.Flip(rng, m2, noise)

		p1, p2 := game.Payoff(n1, n2)
		score1 += p1
		score2 += p2

		own1 = append(own1, m1)
		own2 = append(own2, m2)
		noisy1 = append(noisy1, n1)
		noisy2 = append(noisy2, n2)
	}
	return score1, score2
}
