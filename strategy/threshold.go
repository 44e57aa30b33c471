package strategy

import (
	"fmt"

	"dilemma/game"
)

// Threshold cooperates unconditionally for the first Start turns, then
// keeps cooperating only while the opponent's observed cooperation rate
// over its entire noisy history stays at or above CoopThresh.
type Threshold struct {
	Start      int
	CoopThresh float64
}

func NewThreshold(start int, coopThresh float64) *Threshold {
	if start < 0 {
		panic(fmt.Sprintf("start %d must not be negative", start))
	}
	if coopThresh < 0 || coopThresh > 1 {
		panic(fmt.Sprintf("cooperation threshold %v outside [0, 1]", coopThresh))
	}
	return &Threshold{Start: start, CoopThresh: coopThresh}
}

func (t *Threshold) Play(_, opponentNoisy History) game.Move {
	if len(opponentNoisy) < t.Start {
		return game.Cooperate
	}
	if opponentNoisy.CooperationRate() >= t.CoopThresh {
		return game.Cooperate
	}
	return game.Defect
}

func (t *Threshold) String() string {
	return fmt.Sprintf("Threshold(%d, %g)", t.Start, t.CoopThresh)
}
