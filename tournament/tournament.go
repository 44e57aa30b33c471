package tournament

import (
	"golang.org/x/exp/rand"

	"dilemma/strategy"
)

// Params fixes the shape of one tournament run.
type Params struct {
	Turns  int // encounters per round
	Rounds int // rounds per pairwise match
}

// ScoreMatrix holds total pairwise scores. Scores[i][j] is strategy i's
// accumulated score against strategy j across every round they played; the
// matrix is not symmetric in general. Diagonal entries are self-play.
type ScoreMatrix [][]int

func NewScoreMatrix(n int) ScoreMatrix {
	scores := make(ScoreMatrix, n)
	for i := range scores {
		scores[i] = make([]int, n)
	}
	return scores
}

// Run plays every unordered pair of roster strategies, self-play included,
// and mirrors each match result into both cells of the matrix. One match
// already yields both sides' scores from the same rounds, so only
// n(n+1)/2 matches are played.
func Run(rng *rand.Rand, roster []strategy.Strategy, params Params) ScoreMatrix {
	scores := NewScoreMatrix(len(roster))
	for i := 0; i < len(roster); i++ {
		for j := 0; j <= i; j++ {
			sc1, sc2 := PlayMatch(rng, roster[i], roster[j], params)
			scores[i][j] = sc1
			scores[j][i] = sc2
		}
	}
	return scores
}
