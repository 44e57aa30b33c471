package rank

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dilemma/tournament"
)

func weightSum(weights []float64) float64 {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	return sum
}

func TestPageRank(t *testing.T) {
	scores := tournament.ScoreMatrix{
		{10, 30, 5},
		{20, 10, 25},
		{40, 15, 10},
	}

	t.Run("normalizes after every iteration count", func(t *testing.T) {
		for _, iterations := range []int{1, 2, 50, 500} {
			weights := PageRank(scores, iterations, 1, 0)
			require.InDelta(t, 1, weightSum(weights), 1e-9,
				"Weights should sum to 1 after %d iterations", iterations)
		}
	})

	t.Run("a uniform matrix yields uniform weights", func(t *testing.T) {
		uniform := tournament.ScoreMatrix{
			{7, 7, 7},
			{7, 7, 7},
			{7, 7, 7},
		}
		weights := PageRank(uniform, 100, 1, 0)
		for _, w := range weights {
			require.InDelta(t, 1.0/3, w, 1e-9)
		}
	})

	t.Run("a strategy scoring zero everywhere decays toward zero", func(t *testing.T) {
		withLoser := tournament.ScoreMatrix{
			{10, 30, 5},
			{0, 0, 0},
			{40, 15, 10},
		}
		prev := 1.0
		for _, iterations := range []int{1, 5, 20, 100} {
			w := PageRank(withLoser, iterations, 1, 0)[1]
			require.LessOrEqual(t, w, prev,
				"The loser's weight should never recover as iterations increase")
			prev = w
		}
		require.InDelta(t, 0, prev, 1e-9,
			"A strategy with no points against anyone should end weightless")
	})

	t.Run("an all-zero matrix falls back to uniform", func(t *testing.T) {
		zero := tournament.NewScoreMatrix(4)
		weights := PageRank(zero, 10, 1, 0)
		for _, w := range weights {
			require.InDelta(t, 0.25, w, 1e-9)
		}
	})

	t.Run("early exit matches the fully iterated result", func(t *testing.T) {
		full := PageRank(scores, 5000, 1, 0)
		early := PageRank(scores, 5000, 1, 1e-12)
		for i := range full {
			require.InDelta(t, full[i], early[i], 1e-6)
		}
	})

	t.Run("sharper alpha spreads the weights further apart", func(t *testing.T) {
		flat := PageRank(scores, 200, 1, 0)
		sharp := PageRank(scores, 200, 2, 0)
		spread := func(ws []float64) float64 {
			min, max := ws[0], ws[0]
			for _, w := range ws {
				if w < min {
					min = w
				}
				if w > max {
					max = w
				}
			}
			return max - min
		}
		require.Greater(t, spread(sharp), spread(flat))
	})

	t.Run("panics on malformed matrices", func(t *testing.T) {
		require.Panics(t, func() { PageRank(tournament.ScoreMatrix{}, 10, 1, 0) })
		require.Panics(t, func() { PageRank(tournament.ScoreMatrix{{1, 2}, {3}}, 10, 1, 0) })
	})
}
