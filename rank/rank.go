package rank

import (
	"golang.org/x/exp/slices"

	"dilemma/strategy"
)

// Result pairs a strategy with its aggregated weight across trials.
type Result struct {
	Strategy strategy.Strategy
	Weight   float64
}

// Sort orders results by descending weight in place. The sort is stable:
// equal weights keep their roster order.
func Sort(results []Result) {
	slices.SortStableFunc(results, func(a, b Result) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return 0
		}
	})
}
