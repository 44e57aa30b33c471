package rank

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"dilemma/strategy"
)

func TestSort(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := strategy.NewConstant(0.1, rng)
	b := strategy.NewConstant(0.2, rng)
	c := strategy.NewConstant(0.3, rng)

	t.Run("orders by descending weight", func(t *testing.T) {
		results := []Result{{a, 0.2}, {b, 0.5}, {c, 0.3}}
		Sort(results)
		require.Equal(t, []Result{{b, 0.5}, {c, 0.3}, {a, 0.2}}, results)
	})

	t.Run("ties keep roster order", func(t *testing.T) {
		results := []Result{{a, 0.4}, {b, 0.4}, {c, 0.6}}
		Sort(results)
		require.Equal(t, c, results[0].Strategy)
		require.Equal(t, a, results[1].Strategy,
			"Equal weights should preserve the original order")
		require.Equal(t, b, results[2].Strategy)
	})
}
