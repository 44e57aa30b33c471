package strategy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"dilemma/game"
)

// Constant ignores both histories and cooperates with a fixed probability,
// drawn independently each turn.
type Constant struct {
	CooperateProb float64
	rng           *rand.Rand
}

func NewConstant(cooperateProb float64, rng *rand.Rand) *Constant {
	if cooperateProb < 0 || cooperateProb > 1 {
		panic(fmt.Sprintf("cooperate probability %v outside [0, 1]", cooperateProb))
	}
	return &Constant{CooperateProb: cooperateProb, rng: rng}
}

func (c *Constant) Play(_, _ History) game.Move {
	if c.rng.Float64() < c.CooperateProb {
		return game.Cooperate
	}
	return game.Defect
}

func (c *Constant) String() string {
	return fmt.Sprintf("Constant(%g)", c.CooperateProb)
}
