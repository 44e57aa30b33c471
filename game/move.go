package game

// Move is one of the two symbols a player reveals each turn.
type Move int

const (
	Cooperate Move = iota
	Defect
)

func (m Move) String() string {
	switch m {
	case Cooperate:
		return "Cooperate"
	case Defect:
		return "Defect"
	default:
		return "Unknown"
	}
}

// Opposite returns the other move.
func (m Move) Opposite() Move {
	if m == Cooperate {
		return Defect
	}
	return Cooperate
}

// Payoff scores one encounter: mutual cooperation pays (2,2), mutual
// defection (1,1), and a lone defector takes 3 while the cooperator gets 0.
func Payoff(m1, m2 Move) (int, int) {
	switch {
	case m1 == Cooperate && m2 == Cooperate:
		return 2, 2
	case m1 == Cooperate && m2 == Defect:
		return 0, 3
	case m1 == Defect && m2 == Cooperate:
		return 3, 0
	default:
		return 1, 1
	}
}
