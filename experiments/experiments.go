package experiments

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"dilemma/config"
	"dilemma/experiments/metrics"
	"dilemma/rank"
	"dilemma/strategy"
	"dilemma/tournament"
)

// Run executes cfg.Trials independent tournament-plus-ranking trials and
// returns the roster ranked by summed weight. The accumulated weights are
// deliberately not re-normalized; each trial's vector sums to 1, so the
// total sums to the trial count.
//
// Trials run on a pool of cfg.Workers goroutines. Each trial owns a rand
// source derived from the experiment seed, so results are reproducible for
// a fixed seed regardless of worker count, and the elementwise sum is
// commutative, so completion order does not matter.
func Run(cfg *config.Config) ([]rank.Result, error) {
	specs := cfg.Strategies
	if len(specs) == 0 {
		specs = strategy.DefaultSpecs()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// One roster and rand source per trial, derived up front so a bad
	// roster fails before any tournament runs.
	rosters := make([][]strategy.Strategy, cfg.Trials)
	rngs := make([]*rand.Rand, cfg.Trials)
	for t := range rosters {
		rng := rand.New(rand.NewSource(seed + uint64(t) + 1))
		roster, err := strategy.Build(specs, rng)
		if err != nil {
			return nil, err
		}
		rosters[t] = roster
		rngs[t] = rng
	}
	n := len(rosters[0])

	log.Info().Msgf("starting experiment: %d strategies, %d trials, %d workers, seed %d",
		n, cfg.Trials, cfg.Workers, seed)

	params := tournament.Params{Turns: cfg.Turns, Rounds: cfg.Rounds}
	trialWeights := make([][]float64, cfg.Trials)

	tasks := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				start := time.Now()
				scores := tournament.Run(rngs[t], rosters[t], params)
				trialWeights[t] = rank.PageRank(scores, cfg.Iterations, cfg.Alpha, cfg.Epsilon)
				log.Info().Msgf("completed trial %d of %d in %s", t+1, cfg.Trials, time.Since(start))
			}
		}()
	}
	for t := 0; t < cfg.Trials; t++ {
		tasks <- t
	}
	close(tasks)
	wg.Wait()

	weightSums := make([]float64, n)
	for _, weights := range trialWeights {
		for i, w := range weights {
			weightSums[i] += w
		}
	}

	results := make([]rank.Result, n)
	for i := range results {
		results[i] = rank.Result{Strategy: rosters[0][i], Weight: weightSums[i]}
	}
	rank.Sort(results)

	log.Info().Msgf("completed experiment: top strategy %s", results[0].Strategy)

	if cfg.OutputDir != "" {
		if err := writeArtifacts(cfg.OutputDir, rosters[0], trialWeights, results); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func writeArtifacts(dir string, roster []strategy.Strategy, trialWeights [][]float64, results []rank.Result) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return err
	}

	names := make([]string, len(roster))
	for i, s := range roster {
		names[i] = s.String()
	}
	if err := writer.WriteTrialWeights(names, trialWeights); err != nil {
		return err
	}
	if err := writer.WriteRanking(results); err != nil {
		return err
	}

	log.Info().Msgf("stored experiment artifacts in %s", writer.Dir())
	return nil
}
