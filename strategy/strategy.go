package strategy

import "dilemma/game"

// History is one player's moves so far in a round, oldest first.
type History []game.Move

// CooperationRate returns the fraction of Cooperate entries. An empty
// history rates 0.
func (h History) CooperationRate() float64 {
	if len(h) == 0 {
		return 0
	}
	count := 0
	for _, m := range h {
		if m == game.Cooperate {
			count++
		}
	}
	return float64(count) / float64(len(h))
}

// Strategy decides the next move from its own clean history and the
// opponent's noisy history. Both histories always have the same length, the
// current turn index. Implementations carry configuration fixed at
// construction and no per-round state, so one instance can play any number
// of rounds, including against itself.
type Strategy interface {
	Play(own, opponentNoisy History) game.Move
	String() string
}
