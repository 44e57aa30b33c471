package rank

import (
	"math"

	"dilemma/tournament"
)

// PageRank converts a pairwise score matrix into a strength vector that
// sums to 1. Each iteration multiplies a strategy's weight by the sum over
// all opponents of (score * opponent weight)^alpha, then normalizes the
// vector, so scoring well against already-strong opponents reinforces a
// weight far more than farming weak ones. Weights start uniform at 1.
//
// The iteration count is a fixed cap with no convergence guarantee; it is
// empirically stable as a normalized power method. A positive epsilon adds
// an early exit once the largest per-entry change drops below it; epsilon 0
// always runs the full count.
func PageRank(scores tournament.ScoreMatrix, iterations int, alpha, epsilon float64) []float64 {
	n := len(scores)
	if n == 0 {
		panic("empty score matrix")
	}
	for _, row := range scores {
		if len(row) != n {
			panic("ragged score matrix")
		}
	}

	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}

	next := make([]float64, n)
	for it := 0; it < iterations; it++ {
		var sum float64
		for i, row := range scores {
			var influence float64
			for j, s := range row {
				influence += math.Pow(float64(s)*weights[j], alpha)
			}
			next[i] = weights[i] * influence
			sum += next[i]
		}

		if sum == 0 {
			// Nothing left to normalize; restart from the uniform vector
			// rather than divide by zero.
			for i := range next {
				next[i] = 1 / float64(n)
			}
			weights, next = next, weights
			continue
		}

		var delta float64
		for i := range next {
			next[i] /= sum
			if d := math.Abs(next[i] - weights[i]); d > delta {
				delta = d
			}
		}
		weights, next = next, weights
		if epsilon > 0 && delta < epsilon {
			break
		}
	}
	return weights
}
