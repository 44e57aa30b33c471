package strategy

import (
	"fmt"

	"dilemma/game"
)

// TitForTat reciprocates the opponent's recent behavior relative to a
// baseline move. For the first Delay turns it plays Default; afterwards it
// inspects the opponent's last Delay noisy moves and switches to the
// opposite of Default only when all of them equal Default. A Cooperate
// baseline gives a "nice" reciprocator, a Defect baseline a "nasty" one.
type TitForTat struct {
	Default game.Move
	Delay   int
}

func NewTitForTat(def game.Move, delay int) *TitForTat {
	if delay < 1 {
		panic(fmt.Sprintf("delay %d must be at least 1", delay))
	}
	return &TitForTat{Default: def, Delay: delay}
}

func (t *TitForTat) Play(_, opponentNoisy History) game.Move {
	if len(opponentNoisy) < t.Delay {
		return t.Default
	}
	for _, m := range opponentNoisy[len(opponentNoisy)-t.Delay:] {
		if m != t.Default {
			return t.Default
		}
	}
	return t.Default.Opposite()
}

func (t *TitForTat) String() string {
	return fmt.Sprintf("TitForTat(%s, %d)", t.Default, t.Delay)
}
