package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"dilemma/rank"
	"dilemma/strategy"
)

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir)
	require.NoError(t, err)

	t.Run("creates a timestamped run directory", func(t *testing.T) {
		info, err := os.Stat(writer.Dir())
		require.NoError(t, err)
		require.True(t, info.IsDir())
		require.Equal(t, dir, filepath.Dir(writer.Dir()))
	})

	t.Run("stores per-trial weights with a strategy header", func(t *testing.T) {
		names := []string{"Constant(1)", "TitForTat(Cooperate, 1)"}
		weights := [][]float64{{0.25, 0.75}, {0.5, 0.5}}
		require.NoError(t, writer.WriteTrialWeights(names, weights))

		f, err := os.Open(filepath.Join(writer.Dir(), "trial_weights.csv"))
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, []string{"trial", "Constant(1)", "TitForTat(Cooperate, 1)"}, rows[0])
		require.Equal(t, []string{"1", "0.250000", "0.750000"}, rows[1])
		require.Equal(t, []string{"2", "0.500000", "0.500000"}, rows[2])
	})

	t.Run("stores the final ranking", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		results := []rank.Result{
			{Strategy: strategy.NewConstant(1, rng), Weight: 1.25},
			{Strategy: strategy.NewConstant(0, rng), Weight: 0.75},
		}
		require.NoError(t, writer.WriteRanking(results))

		f, err := os.Open(filepath.Join(writer.Dir(), "ranking.csv"))
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, []string{"rank", "strategy", "weight"}, rows[0])
		require.Equal(t, []string{"1", "Constant(1)", "1.250000"}, rows[1])
		require.Equal(t, []string{"2", "Constant(0)", "0.750000"}, rows[2])
	})
}
